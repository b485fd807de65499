package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/Zachkp/portfolio/cmd"
	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/log"
	"github.com/samber/lo"
	"github.com/spf13/afero"
)

func main() {
	lo.Must0(config.Setup(afero.NewOsFs()))
	lo.Must0(log.Setup())

	cmd.Execute()
}
