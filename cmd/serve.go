package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/beatmaking/rollsheet/model"
	"github.com/beatmaking/rollsheet/session"
	"github.com/beatmaking/rollsheet/util"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

// sessions computed since startup, keyed by session id
var sessions = make(map[string]model.SheetGeometry)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves sheet geometry as JSON",
	Long:  `Serves sheet geometry as JSON for an external renderer or preview UI.`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, detail string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: detail})
}

func HandleGeometry(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, 400, "Could not read request body")
		return
	}

	var input model.GeometryRequestBody
	err = json.Unmarshal(reqBody, &input)
	if err != nil {
		writeError(w, 400, "Could not unmarshal request body: "+err.Error())
		return
	}
	if input.Dir == "" {
		writeError(w, 400, "dir is required")
		return
	}

	geo, err := BuildGeometry(input.Dir, input.Song)
	if errors.Is(err, session.ErrNothingToRender) {
		writeError(w, 422, "nothing to render")
		return
	}
	if err != nil {
		writeError(w, 400, err.Error())
		return
	}

	sessions[geo.SessionID] = geo
	json.NewEncoder(w).Encode(geo)
}

func HandleSessions(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(util.GetKeys(sessions))
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/geometry", HandleGeometry).Methods("POST")
	router.HandleFunc("/sessions", HandleSessions).Methods("GET")
	fmt.Println("Listening on :8080")
	log.Fatal(http.ListenAndServe(":8080", cors.Default().Handler(router)))
}
