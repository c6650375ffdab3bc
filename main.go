package main

import (
	"github.com/PrimeHarvest/PrimeHarvest-Backend/api"
)

var envPath string = "."

func main() {
	server := api.NewServer(envPath)
	server.Start()
}
