package main

import (
	"fmt"
	"io"

	"nutria/config"
	"nutria/internal/infra/auth"
)

func runToken(w io.Writer, cfg *config.Config, userID uint) error {
	tokenSvc, err := auth.NewJWTService(cfg)
	if err != nil {
		return err
	}

	token, err := tokenSvc.GenerateToken(userID)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, token)

	return err
}
