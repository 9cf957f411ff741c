// Copyright (c) 2025 s1fetch
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package creds resolves the catalog credentials used for every API session.
// Resolution order: process environment, a .env file in the working
// directory, then the OS keychain entry written by the login command.
package creds

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	"s1fetch/cli/internal/errors"
	"s1fetch/cli/internal/keychain"
)

// Environment variables holding the catalog credentials.
const (
	EnvUser     = "user"
	EnvPassword = "password"
)

// Source describes where the credentials were found.
type Source string

const (
	SourceEnv      Source = "environment"
	SourceDotenv   Source = ".env file"
	SourceKeychain Source = "OS keychain"
)

// Credentials holds the catalog username and password for one session.
type Credentials struct {
	User     string
	Password string
}

// Resolve returns the catalog credentials and where they came from.
// Missing credentials are an error; no network call is attempted without them.
func Resolve() (Credentials, Source, error) {
	if c, ok := fromEnv(); ok {
		return c, SourceEnv, nil
	}

	// godotenv loads into the process environment without overriding
	// variables that are already set.
	if err := godotenv.Load(); err == nil {
		if c, ok := fromEnv(); ok {
			return c, SourceDotenv, nil
		}
	}

	if km, err := keychain.GetManager(); err == nil {
		if user, password, err := km.LoadCredentials(); err == nil {
			return Credentials{User: user, Password: password}, SourceKeychain, nil
		}
	}

	return Credentials{}, "", errors.New(errors.CredentialsMissing,
		"no catalog credentials found; set the 'user' and 'password' environment variables or run 's1fetch login'")
}

func fromEnv() (Credentials, bool) {
	user := strings.TrimSpace(os.Getenv(EnvUser))
	password := strings.TrimSpace(os.Getenv(EnvPassword))
	if user == "" || password == "" {
		return Credentials{}, false
	}
	return Credentials{User: user, Password: password}, true
}
