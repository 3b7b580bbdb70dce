package config

import (
	"log/slog"

	"github.com/spf13/viper"
)

func Load() App {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "dev")
	v.SetDefault("JWT_SECRET", "local_dev_secret")
	v.SetDefault("JWT_TTL_HOURS", 24)
	v.SetDefault("SEED_SECRET", "change-me-in-production")

	cfg := App{
		Port:        v.GetString("APP_PORT"),
		DatabaseURL: must(v, "DATABASE_URL"),
		JWTSecret:   v.GetString("JWT_SECRET"),
		JWTTTLHours: v.GetInt("JWT_TTL_HOURS"),
		SeedSecret:  v.GetString("SEED_SECRET"),
		Env:         v.GetString("APP_ENV"),
	}
	return cfg
}

func must(v *viper.Viper, k string) string {
	s := v.GetString(k)
	if s == "" {
		slog.Error("required env missing", "key", k)
		panic("missing env " + k)
	}
	return s
}
