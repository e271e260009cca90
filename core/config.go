package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Debug     bool
	TestMode  bool
	Env       string
	Build     string
	AppName   string
	SecretKey string
	WorkDir   string

	// RosterDir holds one parents CSV file per academic year.
	RosterDir   string
	RosterYears int

	// The single administrator account allowed to send broadcasts.
	// PasswordHash is a bcrypt hash; an empty hash matches nothing.
	Admin struct {
		Username     string
		PasswordHash string
	}

	Server struct {
		Host               string
		Addr               string
		JWTExpirationDelta time.Duration
	}

	RollbarToken string
}

var Conf *Config

func init() {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "CampusCast")
	v.SetDefault("secretKey", "x5w&b)7y0qh+$13*u#^hs%e@9m!_(gd4n8zjc6fkr2vl-ta=op")
	v.SetDefault("rosterDir", filepath.Join(Getwd(), "data"))
	v.SetDefault("rosterYears", 4)
	v.SetDefault("adminUsername", "admin")
	v.SetDefault("adminPasswordHash", "")
	v.SetDefault("serverHost", "localhost")
	v.SetDefault("serverAddr", ":8000")
	v.SetDefault("jwtExpirationDelta", 7*24*time.Hour)
	v.SetDefault("rollbarToken", "")

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	Conf = &Config{
		Debug:        v.GetBool("debug"),
		TestMode:     v.GetBool("testMode"),
		Env:          env,
		Build:        v.GetString("build"),
		AppName:      v.GetString("appName"),
		SecretKey:    v.GetString("secretKey"),
		WorkDir:      Getwd(),
		RosterDir:    v.GetString("rosterDir"),
		RosterYears:  v.GetInt("rosterYears"),
		RollbarToken: v.GetString("rollbarToken"),
	}
	Conf.Admin.Username = v.GetString("adminUsername")
	Conf.Admin.PasswordHash = v.GetString("adminPasswordHash")
	Conf.Server.Host = v.GetString("serverHost")
	Conf.Server.Addr = v.GetString("serverAddr")
	Conf.Server.JWTExpirationDelta = v.GetDuration("jwtExpirationDelta")
}
