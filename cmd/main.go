package main

import (
	"github.com/Voisew/foodgram-st/config"
	"github.com/Voisew/foodgram-st/routes"
	"github.com/Voisew/foodgram-st/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	r := routes.SetupRouter()
	r.Run(":8080")
}
