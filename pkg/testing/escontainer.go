// Package testing starts throwaway backing services for integration tests.
package testing

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/elasticsearch"
	"github.com/testcontainers/testcontainers-go/wait"
)

const DefaultESImage = "docker.elastic.co/elasticsearch/elasticsearch:8.19.0"

type ESContainer struct {
	Container testcontainers.Container
	Address   string
}

type esOptions struct {
	image   string
	startup time.Duration
}

type ESOption func(*esOptions)

func WithESImage(image string) ESOption {
	return func(o *esOptions) {
		o.image = image
	}
}

func WithStartupTimeout(d time.Duration) ESOption {
	return func(o *esOptions) {
		o.startup = d
	}
}

// NewESContainer starts a single node cluster without authentication and
// terminates it when tb finishes.
func NewESContainer(ctx context.Context, tb testing.TB, opts ...ESOption) *ESContainer {
	tb.Helper()

	o := esOptions{image: DefaultESImage, startup: 90 * time.Second}
	for _, opt := range opts {
		opt(&o)
	}

	container, err := elasticsearch.Run(ctx, o.image,
		elasticsearch.WithPassword(""),
		testcontainers.WithEnv(map[string]string{
			"xpack.security.enabled": "false",
			"ES_JAVA_OPTS":           "-Xms512m -Xmx512m",
		}),
		testcontainers.WithWaitStrategy(
			wait.ForHTTP("/").
				WithPort("9200").
				WithStartupTimeout(o.startup),
		),
	)
	if err != nil {
		tb.Fatalf("failed to start elasticsearch container: %v", err)
	}

	tb.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			tb.Logf("failed to terminate elasticsearch container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		tb.Fatalf("failed to get elasticsearch host: %v", err)
	}
	port, err := container.MappedPort(ctx, "9200")
	if err != nil {
		tb.Fatalf("failed to get elasticsearch port: %v", err)
	}

	return &ESContainer{
		Container: container,
		Address:   fmt.Sprintf("http://%s:%s", host, port.Port()),
	}
}
