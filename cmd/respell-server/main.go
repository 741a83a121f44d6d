// Command respell-server provides an HTTP REST API for query correction.
//
// Usage:
//
//	respell-server -config respell.yaml
//	RESPELL_VOCAB_PATH=en.txt respell-server -p 8080
//	REDIS_ADDR=localhost:6379 respell-server -config respell.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/kyrelabs/respell/internal/config"
	"github.com/kyrelabs/respell/internal/customdict"
	"github.com/kyrelabs/respell/internal/vocab"
	"github.com/kyrelabs/respell/respell"
)

func main() {
	cfgPath := flag.String("config", "", "YAML config file")
	port    := flag.String("p", "", "port to listen on (overrides config addr)")
	flag.Parse()

	// .env (if present) feeds the env overrides below.
	_ = godotenv.Load()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg.ApplyEnv()
	if *port != "" {
		cfg.Addr = ":" + *port
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	setupLogging(cfg.LogLevel)

	v, err := loadVocabulary(cfg)
	if err != nil {
		log.Fatalf("vocabulary: %v", err)
	}
	log.WithField("words", v.Len()).Info("vocabulary loaded")

	sc, err := respell.ScorerByName(cfg.Scorer)
	if err != nil {
		log.Fatalf("scorer: %v", err)
	}
	corrector, err := respell.New(v, respell.WithScorer(sc), respell.WithMaxDistance(cfg.MaxDistance))
	if err != nil {
		log.Fatalf("corrector: %v", err)
	}

	var dict *customdict.CustomDict
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		dict = customdict.New(client)
		if err := mergeCustomWords(corrector, dict); err != nil {
			log.Warnf("custom dictionary unavailable: %v", err)
			dict = nil
		}
	}

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      respell.NewServer(corrector, dict).Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.WithFields(log.Fields{
		"addr":   cfg.Addr,
		"scorer": cfg.Scorer,
		"redis":  cfg.Redis.Addr != "",
	}).Info("respell server listening")
	log.Infof("  POST %s/v1/correct", cfg.Addr)
	log.Infof("  POST %s/v1/distance", cfg.Addr)
	log.Infof("  GET  %s/        (Redoc UI)", cfg.Addr)
	log.Fatal(srv.ListenAndServe())
}

func loadVocabulary(cfg config.Config) (*vocab.Vocabulary, error) {
	switch {
	case cfg.VocabPath != "":
		return vocab.LoadCounts(cfg.VocabPath)
	case cfg.CorpusPath != "":
		return vocab.LoadCorpus(cfg.CorpusPath)
	case cfg.VocabURL != "":
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		return vocab.FetchCounts(ctx, cfg.VocabURL)
	}
	return nil, fmt.Errorf("no vocabulary source configured")
}

// mergeCustomWords folds the Redis custom word set into the live vocabulary.
func mergeCustomWords(c *respell.Corrector, dict *customdict.CustomDict) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	words, err := dict.All(ctx)
	if err != nil {
		return err
	}
	for _, w := range words {
		if err := c.AddWord(w, customdict.Frequency); err != nil {
			log.Warnf("skipping custom word %q: %v", w, err)
		}
	}
	log.WithField("words", len(words)).Info("custom dictionary merged")
	return nil
}

func setupLogging(level string) {
	log.SetFormatter(&log.TextFormatter{
		DisableLevelTruncation: true,
		DisableTimestamp:       true,
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}
