package cli

import (
	"github.com/Gautam-Hegde/notte-go/internal/common/httpclient"
	"github.com/Gautam-Hegde/notte-go/pkg/notte"
)

// newTransport, when set, replaces the network transport. Tests use it to
// route CLI calls to an in-process handler.
var newTransport func(apiKey string) httpclient.HTTPClientInterface

// newClient builds the SDK client. Credentials and server URL are taken from
// the flags, then the config file, then the environment.
func newClient() (notte.Client, error) {
	cfg := GetConfig()
	apiKey := valueOr(apiKeyFlag, cfg.APIKey)
	serverURL := MorphServer(valueOr(serverFlag, cfg.ServerURL))

	clientCfg := notte.Config{APIKey: apiKey, ServerURL: serverURL}
	if newTransport != nil {
		clientCfg.Transport = newTransport(apiKey)
	}
	client, err := notte.NewClientWithConfig(clientCfg)
	if err != nil {
		return notte.Client{}, err
	}
	if useLocal {
		client = client.UseLocal()
	}
	return client, nil
}
