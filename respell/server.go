package respell

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/kyrelabs/respell/internal/customdict"
	"github.com/kyrelabs/respell/internal/model"
	"github.com/kyrelabs/respell/internal/util"
	"github.com/kyrelabs/respell/pkg/levenshtein"
)

// Server exposes a Corrector over HTTP. The optional customdict persists
// user words in Redis; when nil, the custom-word endpoints report the
// feature as unavailable.
type Server struct {
	corrector *Corrector
	dict      *customdict.CustomDict
}

// NewServer wires a Corrector (required) and a custom dictionary (optional).
func NewServer(c *Corrector, dict *customdict.CustomDict) *Server {
	return &Server{corrector: c, dict: dict}
}

// Router builds the HTTP routes.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(loggingMiddleware)

	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/correct", s.handleCorrect).Methods(http.MethodPost)
	v1.HandleFunc("/distance", s.handleDistance).Methods(http.MethodPost)
	v1.HandleFunc("/custom-word", s.handleAddWord).Methods(http.MethodPost)
	v1.HandleFunc("/custom-word/{word}", s.handleRemoveWord).Methods(http.MethodDelete)

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/openapi.json", s.handleOpenAPI).Methods(http.MethodGet)
	r.HandleFunc("/", s.handleDocs).Methods(http.MethodGet)
	return r
}

// CorrectRequest is the body for POST /v1/correct.
type CorrectRequest struct {
	Query       string   `json:"query"`                  // text to correct
	Words       []string `json:"words,omitempty"`        // inline user dictionary
	Dict        *Dict    `json:"dict,omitempty"`         // user dictionary object
	MaxDistance *int     `json:"max_distance,omitempty"` // per-request cutoff override
	Scorer      string   `json:"scorer,omitempty"`       // per-request scorer override
}

// DistanceRequest is the body for POST /v1/distance.
type DistanceRequest struct {
	Source     string `json:"source"`
	Target     string `json:"target"`
	Matrix     bool   `json:"matrix,omitempty"`     // include the full DP matrix
	Operations bool   `json:"operations,omitempty"` // include the edit script
}

// DistanceResponse is the reply for POST /v1/distance.
type DistanceResponse struct {
	Distance   int                     `json:"distance"`
	Matrix     [][]int                 `json:"matrix,omitempty"`
	Operations []levenshtein.Operation `json:"operations,omitempty"`
	Backtrace  string                  `json:"backtrace,omitempty"`
}

func (s *Server) handleCorrect(w http.ResponseWriter, r *http.Request) {
	var req CorrectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}
	defer r.Body.Close()

	// Merge inline words and dictionary object into one user dictionary.
	var dict *Dict
	if len(req.Words) > 0 || (req.Dict != nil && len(req.Dict.Words) > 0) {
		dict = NewDict(req.Words...)
		if req.Dict != nil {
			dict.Words = append(dict.Words, req.Dict.Words...)
		}
	}

	corrector := s.corrector
	if req.Scorer != "" || req.MaxDistance != nil {
		override := *corrector
		if req.Scorer != "" {
			sc, err := ScorerByName(req.Scorer)
			if err != nil {
				sendError(w, http.StatusBadRequest, err.Error())
				return
			}
			override.scorer = sc
		}
		if req.MaxDistance != nil {
			if *req.MaxDistance < 0 {
				sendError(w, http.StatusBadRequest, "max_distance must be >= 0")
				return
			}
			override.maxDist = *req.MaxDistance
		}
		corrector = &override
	}

	var res *model.Result
	var err error
	if dict != nil {
		res, err = corrector.CorrectResultWithDict(req.Query, dict)
	} else {
		res, err = corrector.CorrectResult(req.Query)
	}
	if err != nil {
		sendError(w, http.StatusInternalServerError, fmt.Sprintf("correction failed: %v", err))
		return
	}
	sendJSON(w, http.StatusOK, res)
}

func (s *Server) handleDistance(w http.ResponseWriter, r *http.Request) {
	var req DistanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}
	defer r.Body.Close()

	// Matrix materialization is opt-in; the plain scalar path never builds it.
	if !req.Matrix && !req.Operations {
		sendJSON(w, http.StatusOK, DistanceResponse{Distance: levenshtein.Distance(req.Source, req.Target)})
		return
	}

	m, err := levenshtein.NewMatrix(req.Source, req.Target)
	if err != nil {
		sendError(w, http.StatusInternalServerError, err.Error())
		return
	}
	resp := DistanceResponse{Distance: m.Distance()}
	if req.Matrix {
		resp.Matrix = m.Cells()
	}
	if req.Operations {
		resp.Operations = m.Operations()
		resp.Backtrace = m.Format()
	}
	sendJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAddWord(w http.ResponseWriter, r *http.Request) {
	if s.dict == nil {
		sendError(w, http.StatusServiceUnavailable, "custom dictionary not configured")
		return
	}
	var req struct {
		Word string `json:"word"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Word == "" {
		sendError(w, http.StatusBadRequest, "word is required")
		return
	}
	defer r.Body.Close()

	if err := s.dict.Add(r.Context(), req.Word); err != nil {
		sendError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := s.corrector.AddWord(req.Word, customdict.Frequency); err != nil {
		sendError(w, http.StatusBadRequest, err.Error())
		return
	}
	sendJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
}

func (s *Server) handleRemoveWord(w http.ResponseWriter, r *http.Request) {
	if s.dict == nil {
		sendError(w, http.StatusServiceUnavailable, "custom dictionary not configured")
		return
	}
	word := mux.Vars(r)["word"]
	if word == "" {
		sendError(w, http.StatusBadRequest, "word is required")
		return
	}
	if err := s.dict.Remove(r.Context(), word); err != nil {
		sendError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.corrector.RemoveWord(word)
	sendJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	sendJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "respell",
	})
}

func (s *Server) handleOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, openAPISpec)
}

func (s *Server) handleDocs(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, redocHTML)
}

func sendJSON(w http.ResponseWriter, status int, v any) {
	out, err := util.MarshalNoEscape(v, true)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(out)
}

func sendError(w http.ResponseWriter, status int, msg string) {
	sendJSON(w, status, map[string]string{"error": msg})
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.WithFields(log.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start),
		}).Debug("request handled")
	})
}

const openAPISpec = `{
  "openapi": "3.0.3",
  "info": {
    "title": "respell API",
    "description": "Spelling correction for short queries, backed by Levenshtein distance and frequency-ranked candidates.",
    "version": "1.0.0"
  },
  "paths": {
    "/v1/correct": {
      "post": {
        "summary": "Correct a query",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": { "$ref": "#/components/schemas/CorrectRequest" },
              "examples": {
                "basic": { "value": { "query": "Iranin financal banks are strongss" } },
                "inline dictionary": { "value": { "query": "grafana dashbord", "words": ["grafana"] } }
              }
            }
          }
        },
        "responses": {
          "200": {
            "description": "Correction result",
            "content": {
              "application/json": {
                "schema": { "$ref": "#/components/schemas/Result" }
              }
            }
          },
          "400": { "description": "Malformed request body" }
        }
      }
    },
    "/v1/distance": {
      "post": {
        "summary": "Edit distance between two strings",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": { "$ref": "#/components/schemas/DistanceRequest" },
              "examples": {
                "scalar": { "value": { "source": "play", "target": "stay" } },
                "diagnostics": { "value": { "source": "play", "target": "stay", "matrix": true, "operations": true } }
              }
            }
          }
        },
        "responses": {
          "200": { "description": "Distance, optionally with matrix and edit script" }
        }
      }
    },
    "/v1/custom-word": {
      "post": {
        "summary": "Add a custom word",
        "requestBody": {
          "required": true,
          "content": { "application/json": { "example": { "word": "grafana" } } }
        },
        "responses": {
          "201": { "description": "Word stored" },
          "503": { "description": "Custom dictionary not configured" }
        }
      }
    },
    "/v1/custom-word/{word}": {
      "delete": {
        "summary": "Remove a custom word",
        "parameters": [
          { "name": "word", "in": "path", "required": true, "schema": { "type": "string" } }
        ],
        "responses": {
          "200": { "description": "Word removed" },
          "503": { "description": "Custom dictionary not configured" }
        }
      }
    },
    "/health": {
      "get": {
        "summary": "Health",
        "responses": {
          "200": { "description": "Service healthy" }
        }
      }
    }
  },
  "components": {
    "schemas": {
      "CorrectRequest": {
        "type": "object",
        "required": ["query"],
        "properties": {
          "query": { "type": "string", "description": "Text to correct" },
          "words": { "type": "array", "items": { "type": "string" }, "description": "Inline user dictionary" },
          "dict":  { "type": "object", "properties": { "words": { "type": "array", "items": { "type": "string" } } } },
          "max_distance": { "type": "integer", "minimum": 0, "description": "Per-request correction cutoff (0 = unlimited)" },
          "scorer": { "type": "string", "enum": ["naive", "weighted"], "description": "Per-request scorer override" }
        }
      },
      "DistanceRequest": {
        "type": "object",
        "required": ["source", "target"],
        "properties": {
          "source":     { "type": "string" },
          "target":     { "type": "string" },
          "matrix":     { "type": "boolean", "description": "Include the full DP matrix" },
          "operations": { "type": "boolean", "description": "Include the edit script and backtrace" }
        }
      },
      "Result": {
        "type": "object",
        "properties": {
          "original":     { "type": "string" },
          "corrected":    { "type": "string" },
          "editDistance": { "type": "integer", "description": "Levenshtein(original, corrected)" },
          "tokenCount":   { "type": "integer" },
          "errorCount":   { "type": "integer" },
          "corrections":  { "type": "array", "items": { "$ref": "#/components/schemas/Correction" } }
        }
      },
      "Correction": {
        "type": "object",
        "properties": {
          "index":         { "type": "integer", "description": "Token position in the query" },
          "origin":        { "type": "string" },
          "chosen":        { "type": "string" },
          "distance":      { "type": "integer" },
          "probability":   { "type": "number" },
          "uncorrectable": { "type": "boolean" },
          "candidates":    { "type": "array", "items": { "type": "object" } }
        }
      }
    }
  }
}`

const redocHTML = `<!DOCTYPE html>
<html>
<head>
  <title>respell API Docs</title>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <style>body { margin: 0; padding: 0; }</style>
</head>
<body>
  <redoc spec-url="/openapi.json" expand-responses="200" hide-download-button></redoc>
  <script src="https://cdn.jsdelivr.net/npm/redoc@latest/bundles/redoc.standalone.js"></script>
</body>
</html>`
