package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	DBType     string `env:"DBType" envDefault:"sqlite"`
	DSNURL     string `env:"DSN_URL" envDefault:""`
	DBUser     string `env:"DBUser" envDefault:""`
	DBPassword string `env:"DBPassword" envDefault:""`
	DBAddr     string `env:"DBAddr" envDefault:""`
	DBName     string `env:"DBName" envDefault:"taskboard"`
	DBPath     string `env:"DBPath" envDefault:"datas/taskboard.db"`
	DBPort     string `env:"DBPort" envDefault:"3306"`

	// Bootstrap admin row created in the credential store at startup when set.
	AdminUsername string `env:"ADMIN_USERNAME" envDefault:""`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:""`

	// Passwords for the fixed in-memory accounts. Defaults mirror the
	// usernames so a fresh install is reachable without any configuration.
	BuiltinAdminPassword      string `env:"BUILTIN_ADMIN_PASSWORD" envDefault:"admin"`
	BuiltinDirectorPassword   string `env:"BUILTIN_DIRECTOR_PASSWORD" envDefault:"director"`
	BuiltinEconomistPassword  string `env:"BUILTIN_ECONOMIST_PASSWORD" envDefault:"economist"`
	BuiltinAccountantPassword string `env:"BUILTIN_ACCOUNTANT_PASSWORD" envDefault:"accountant"`

	JWTSecret            string `env:"JWT_SECRET" envDefault:"dev-secret-change-me"`
	JWTIssuer            string `env:"JWT_ISSUER" envDefault:"taskboard"`
	JWTExpirationMinutes int    `env:"JWT_EXPIRATION_MINUTES" envDefault:"1440"`
}

func ParseConfig() (Config, error) {
	var Conf Config
	err := env.Parse(&Conf)
	if err != nil {
		logrus.WithError(err).Error("env.Parse error")
		return Config{}, err
	}
	logrus.Debugf("%#v\n", Conf)
	return Conf, nil
}
