package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/beeptable/constants"
	"github.com/jsphweid/beeptable/converter"
	"github.com/jsphweid/beeptable/encoder"
	"github.com/jsphweid/beeptable/event"
	"github.com/jsphweid/beeptable/file"
	"github.com/jsphweid/beeptable/model"
	"github.com/jsphweid/beeptable/util"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const maxUploadSize = 8 << 20

type ctxKey int

const requestIdKey ctxKey = 0

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "address to listen on")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves conversions over HTTP",
	Long: `Serves conversions over HTTP. POST a MIDI file as the request body to
/convert?tracks=1&budget=2000&name=song and get the header back.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logrus.WithField("addr", serveAddr).Info("listening")
		return http.ListenAndServe(serveAddr, newRouter())
	},
}

func newRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(withRequestId)
	router.HandleFunc("/convert", handleConvert).Methods("POST")
	router.HandleFunc("/healthz", handleHealth).Methods("GET")

	return cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		ExposedHeaders: []string{"X-Request-Id", "Content-Disposition"},
	}).Handler(router)
}

func withRequestId(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIdKey, id)))
	})
}

func requestLogger(r *http.Request) *logrus.Entry {
	id, _ := r.Context().Value(requestIdKey).(string)
	return logrus.WithFields(logrus.Fields{"request": id, "path": r.URL.Path})
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "ok")
}

func requestConfig(r *http.Request) (model.Config, error) {
	q := r.URL.Query()
	cfg := model.Config{
		Filename:        q.Get("name"),
		Budget:          constants.GetBudget(),
		ZeroVelocityOff: q.Get("zero_velocity_off") == "true",
		AllDeltas:       q.Get("all_deltas") == "true",
	}
	if cfg.Filename == "" {
		cfg.Filename = "song"
	}

	tracks := q.Get("tracks")
	if tracks == "" {
		tracks = "1"
	}
	parsed, err := util.ParseTrackList(tracks)
	if err != nil {
		return cfg, err
	}
	cfg.Tracks = parsed

	if raw := q.Get("budget"); raw != "" {
		budget, err := strconv.Atoi(raw)
		if err != nil || budget < 0 {
			return cfg, errors.Errorf("invalid budget %q", raw)
		}
		cfg.Budget = budget
	}
	return cfg, nil
}

func handleConvert(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r)

	cfg, err := requestConfig(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	res, err := converter.ConvertReader(http.MaxBytesReader(w, r.Body, maxUploadSize), cfg)
	if err != nil {
		log.WithError(err).Info("conversion rejected")
		status := http.StatusBadRequest
		if errors.Is(err, event.ErrTrackOutOfRange) || errors.Is(err, converter.ErrNoNotes) {
			status = http.StatusUnprocessableEntity
		}
		writeError(w, status, err)
		return
	}

	var buf bytes.Buffer
	if err := encoder.Write(&buf, res.Header); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	log.WithField("len_notes", res.Header.LenNotes).Info("converted")
	w.Header().Set("Content-Type", "text/x-c; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.OutputName(cfg.Filename)))
	w.Write(buf.Bytes())
}
