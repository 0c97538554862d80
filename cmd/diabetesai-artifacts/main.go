// Command diabetesai-artifacts seeds a database or Redis artifact store from
// local files.
//
//	diabetesai-artifacts -source sqlite -sqlite artifacts.db diabetes_model.json scaler.json
//	diabetesai-artifacts -source redis model.onnx=exports/v3.onnx
//	diabetesai-artifacts -source postgres -list
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"diabetesai/internal/adapter/redisstore"
	"diabetesai/internal/adapter/sqlstore"
	"diabetesai/internal/config"
)

type artifactWriter interface {
	PutArtifact(ctx context.Context, name string, data []byte) error
	Close() error
}

func main() {
	cfg := config.Load()

	source := flag.String("source", cfg.ArtifactSource, "artifact store: postgres, sqlite or redis")
	dsn := flag.String("dsn", cfg.DatabaseURL, "postgres connection string")
	sqlitePath := flag.String("sqlite", cfg.SQLitePath, "sqlite database file")
	redisAddr := flag.String("redis-addr", cfg.RedisAddr, "redis address")
	redisDB := flag.Int("redis-db", cfg.RedisDB, "redis database")
	prefix := flag.String("prefix", cfg.RedisKeyPrefix, "redis key prefix")
	list := flag.Bool("list", false, "list stored artifacts (sql stores only)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [name=]file...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if !*list && flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	var (
		w  artifactWriter
		db *sqlstore.DB
	)
	switch *source {
	case config.SourcePostgres, config.SourceSQLite:
		driver, target := sqlstore.DriverPostgres, *dsn
		if *source == config.SourceSQLite {
			driver, target = sqlstore.DriverSQLite, *sqlitePath
		}
		var err error
		db, err = sqlstore.Open(driver, target)
		if err != nil {
			log.Fatalf("open %s: %v", *source, err)
		}
		w = db
	case config.SourceRedis:
		rs := redisstore.New(*redisAddr, cfg.RedisPassword, *redisDB, *prefix)
		if err := rs.CheckConnection(ctx); err != nil {
			log.Fatalf("redis: %v", err)
		}
		w = rs
	default:
		log.Fatalf("source %q cannot be written to", *source)
	}
	defer func() { _ = w.Close() }()

	for _, arg := range flag.Args() {
		name, path := splitArg(arg)
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("read %s: %v", path, err)
		}
		if err := w.PutArtifact(ctx, name, data); err != nil {
			log.Fatalf("store %s: %v", name, err)
		}
		log.Printf("stored %s (%d bytes)", name, len(data))
	}

	if *list {
		if db == nil {
			log.Fatalf("-list is only supported for sql stores")
		}
		arts, err := db.ListArtifacts(ctx)
		if err != nil {
			log.Fatalf("list: %v", err)
		}
		names := make([]string, 0, len(arts))
		for n := range arts {
			names = append(names, n)
		}
		sort.Strings(names)
		for _, n := range names {
			fmt.Printf("%s\t%s\n", n, arts[n].Format(time.RFC3339))
		}
	}
}

// splitArg parses "name=path"; a bare path is stored under its base name.
func splitArg(arg string) (name, path string) {
	if n, p, ok := strings.Cut(arg, "="); ok && n != "" {
		return n, p
	}
	return filepath.Base(arg), arg
}
