package customHttpClient

import (
	"net/http"

	"github.com/akolanti/FinDocAPI/internal/config"
)

var customTransport = &http.Transport{
	MaxIdleConns:        config.MaxIdleConns,
	MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
	IdleConnTimeout:     config.IdleConnTimeout,
}

var pooledClient = &http.Client{Transport: customTransport}

// PooledClient is shared by the upstream model clients so round trips reuse
// connections.
func PooledClient() *http.Client {
	return pooledClient
}
