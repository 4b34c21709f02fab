package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"github.com/goodways/goodways/shared/config"
	"github.com/goodways/goodways/shared/domain"
	"github.com/goodways/goodways/shared/jwt"
)

var opts = struct {
	ConfigFolder string        `long:"config_folder" env:"CONFIG_FOLDER" default:"backend/config" description:"path to folder with configs"`
	Name         string        `long:"name" default:"admin" description:"admin name recorded in the token"`
	TTL          time.Duration `long:"ttl" description:"token lifetime, defaults to admin_token_ttl from config"`
}{}

func main() {
	_ = godotenv.Load()
	if _, err := flags.Parse(&opts); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	cfg := config.MustLoad(opts.ConfigFolder)
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = cfg.AdminTokenTTL()
	}

	token, err := jwt.New(cfg.JwtKey(), ttl).NewToken(domain.Admin{Name: opts.Name})
	if err != nil {
		log.Fatalf("Failed to generate admin token: %v", err)
	}

	fmt.Println("=================================================")
	fmt.Println("  Admin access token")
	fmt.Println("=================================================")
	fmt.Println()
	fmt.Printf("Name:    %s\n", opts.Name)
	fmt.Printf("Expires: %s\n", time.Now().Add(ttl).UTC().Format(time.RFC3339))
	fmt.Println()
	fmt.Println(token)
	fmt.Println()
	fmt.Println("Use it as:")
	fmt.Println("  Authorization: Bearer <token>")
	fmt.Println("=================================================")
}
