package testdb

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
)

const (
	dbUser     = "sharpdata"
	dbPassword = "sharpdata"
	dbName     = "sharpdata"
)

// TestDBInstance is a throwaway Postgres (and Redis) running in Docker.
type TestDBInstance struct {
	pool      *dockertest.Pool
	resources []*dockertest.Resource
	DSN       string
	RedisAddr string
}

func NewTestDBInstance() (*TestDBInstance, error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("could not construct pool: %w", err)
	}
	if err = pool.Client.Ping(); err != nil {
		return nil, fmt.Errorf("could not connect to Docker: %w", err)
	}
	pool.MaxWait = 60 * time.Second

	inst := &TestDBInstance{pool: pool}

	pg, err := inst.run(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=" + dbUser,
			"POSTGRES_PASSWORD=" + dbPassword,
			"POSTGRES_DB=" + dbName,
			"listen_addresses = '*'",
		},
	})
	if err != nil {
		return nil, err
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(dbUser, dbPassword),
		Host:     pg.GetHostPort("5432/tcp"),
		Path:     dbName,
		RawQuery: "sslmode=disable",
	}
	inst.DSN = dsn.String()

	err = pool.Retry(func() error {
		conn, err := pgx.Connect(context.Background(), inst.DSN)
		if err != nil {
			return err
		}
		defer conn.Close(context.Background())
		return conn.Ping(context.Background())
	})
	if err != nil {
		inst.Down()
		return nil, fmt.Errorf("could not connect to postgres: %w", err)
	}

	rd, err := inst.run(&dockertest.RunOptions{Repository: "redis", Tag: "7-alpine"})
	if err != nil {
		inst.Down()
		return nil, err
	}
	inst.RedisAddr = rd.GetHostPort("6379/tcp")

	err = pool.Retry(func() error {
		rdb := redis.NewClient(&redis.Options{Addr: inst.RedisAddr})
		defer rdb.Close()
		return rdb.Ping(context.Background()).Err()
	})
	if err != nil {
		inst.Down()
		return nil, fmt.Errorf("could not connect to redis: %w", err)
	}

	return inst, nil
}

func (t *TestDBInstance) run(opts *dockertest.RunOptions) (*dockertest.Resource, error) {
	resource, err := t.pool.RunWithOptions(opts, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, fmt.Errorf("could not start %s: %w", opts.Repository, err)
	}
	_ = resource.Expire(300)
	t.resources = append(t.resources, resource)
	return resource, nil
}

func (t *TestDBInstance) Down() {
	for _, r := range t.resources {
		_ = t.pool.Purge(r)
	}
	t.resources = nil
}
