// Package firestore implements the repository interfaces on Cloud Firestore.
// Customers and clinicians are top-level collections; equipment and daily
// reports live in per-customer sub-collections.
package firestore

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"megacare/config"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	App    *firebase.App
	Config *config.Config
	Logger *slog.Logger
}

// New creates the Firestore client from the shared Firebase app and ties its
// lifetime to the fx lifecycle.
func New(params Params) (*firestore.Client, error) {
	client, err := params.App.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}

// isNotFound reports whether a Firestore read failed because the document
// does not exist.
func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
