package main

import (
	"fmt"
	"net/url"

	"quizcafe/internal/config"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// clientConfig requests tokens for the API audience from the identity
// provider's token endpoint.
func clientConfig(auth config.AuthConfig, clientID, clientSecret string) *clientcredentials.Config {
	return &clientcredentials.Config{
		ClientID:       clientID,
		ClientSecret:   clientSecret,
		TokenURL:       fmt.Sprintf("https://%s/oauth/token", auth.Domain),
		EndpointParams: url.Values{"audience": {auth.Audience}},
		AuthStyle:      oauth2.AuthStyleInParams,
	}
}
