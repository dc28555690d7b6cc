package main

import (
	"github.com/moviemind/core/internal/app"
	"github.com/moviemind/core/internal/config"
)

func main() {
	app.Go(config.Load())
}
