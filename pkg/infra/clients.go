package infra

import (
	"github.com/secmon-lab/ghloc/pkg/domain/interfaces"
)

type Clients struct {
	github   interfaces.GitHub
	bqClient interfaces.BigQuery
	storage  interfaces.Storage
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}
func (x *Clients) Storage() interfaces.Storage {
	return x.storage
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}

func WithStorage(client interfaces.Storage) Option {
	return func(x *Clients) {
		x.storage = client
	}
}
