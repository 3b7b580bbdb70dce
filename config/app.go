package config

type App struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	JWTTTLHours int
	SeedSecret  string
	Env         string
}
