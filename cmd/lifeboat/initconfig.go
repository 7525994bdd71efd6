package main

import (
	"fmt"
	"os"

	"lifeboat/internal/commands"
	"lifeboat/internal/config"
)

func registerInitConfig(reg *commands.Registry) {
	fs := commands.NewFlagSet("init-config")
	path := fs.StringP("config", "c", config.ConfigPath, "config file to write")
	force := fs.BoolP("force", "f", false, "overwrite an existing file")
	reg.Register("init-config", "write the default config file", fs, func([]string) error {
		return initConfig(*path, *force)
	})
}

func initConfig(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s exists, use --force to overwrite", path)
	}
	if err := config.Save(path, config.Default()); err != nil {
		return err
	}
	fmt.Println("wrote", path)
	return nil
}
