package goated_client

import (
	"github.com/johnnyknox/leaderboard/go/clients"
)

type GoatedClient struct {
	*clients.BaseClient
}

// NewGoatedClient builds a client for the affiliate API. The endpoint is
// public, so no auth headers are sent.
func NewGoatedClient(baseURL string) *GoatedClient {
	if baseURL == "" {
		baseURL = BaseURL
	}

	client := &GoatedClient{
		BaseClient: clients.NewBaseClient(baseURL),
	}

	client.SetHeader(AcceptHeader, JSONContentType)

	return client
}
