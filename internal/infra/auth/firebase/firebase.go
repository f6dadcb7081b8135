// Package firebase wires the Firebase Admin SDK into the application: one App
// shared by the ID-token verifier, the custom-token minter and the Firestore
// client.
package firebase

import (
	"context"
	"log/slog"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"

	"megacare/config"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewApp initializes the Firebase Admin SDK. With an empty credentialsPath
// Application Default Credentials are used, which is how Cloud Run deployments
// authenticate.
func NewApp(params Params) (*firebase.App, error) {
	conf := &firebase.Config{ProjectID: params.Config.Firebase.ProjectID}

	var opts []option.ClientOption
	if path := params.Config.Firebase.CredentialsPath; path != "" {
		opts = append(opts, option.WithCredentialsFile(path))
	}

	app, err := firebase.NewApp(params.Ctx, conf, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	params.Logger.Info("Firebase Admin SDK initialized",
		slog.String("projectId", params.Config.Firebase.ProjectID))

	return app, nil
}

// NewAuthClient creates the Firebase auth client from the shared App.
func NewAuthClient(ctx context.Context, app *firebase.App) (*auth.Client, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase auth client")
	}

	return client, nil
}
