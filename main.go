package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/iceseyes/naval/api"
	"github.com/iceseyes/naval/db"
	"github.com/iceseyes/naval/db/sqlc"
	mb "github.com/iceseyes/naval/models/battle"
	mc "github.com/iceseyes/naval/models/connection"
)

func main() {
	if os.Getenv("STAGE") != "prod" {
		if err := godotenv.Load(".env"); err != nil {
			panic(err)
		}
	}
	stage := os.Getenv("STAGE")
	if stage != "dev" && stage != "prod" {
		panic("stage must be either dev or prod")
	}

	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		panic(err)
	}

	psqlDb := db.MustConnectToDb(os.Getenv("DATABASE_URL"))
	querier := sqlc.New(psqlDb)

	sessionManager := mc.NewNavalSessionManager()
	go sessionManager.CleanupPeriodically()

	matchManager := mb.NewNavalMatchManager()
	go matchManager.ManageMatchTermination()

	rp := api.NewRequestProcessor(sessionManager, matchManager, querier)
	router := api.NewRouter(rp, querier)

	log.Printf("Listening to port %d\n", port)
	log.Fatalln(http.ListenAndServe("0.0.0.0:"+strconv.Itoa(port), router))
}
