package main

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func main() {
	viper.SetEnvPrefix("sudoku")
	viper.AutomaticEnv()
	viper.SetDefault("addr", ":8080")
	viper.SetDefault("mode", gin.ReleaseMode)

	gin.SetMode(viper.GetString("mode"))
	e := gin.Default()
	v1 := e.Group("/api").
		Group("/v1")

	solveHandler := NewSolveHandler()
	v1.POST("/solve", solveHandler.Solve)

	if err := e.Run(viper.GetString("addr")); err != nil {
		log.Fatal().Err(err).Msg("run server")
	}
}
