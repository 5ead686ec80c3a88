package config

type App struct {
	Port        string `mapstructure:"app_port"`
	DatabaseURL string `mapstructure:"database_url"`
	JWTSecret   string `mapstructure:"jwt_secret"`
	Env         string `mapstructure:"app_env"`
	DBMaxConns  int32  `mapstructure:"db_max_conns"`
}

func (a App) IsDev() bool { return a.Env == "dev" }
