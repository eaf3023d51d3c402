package http

import (
	"encoding/json"
	"sync"

	"routing/internal/generated/servers"

	"github.com/swaggo/swag"
)

// openAPIDoc serves the embedded OpenAPI document to the Swagger UI.
type openAPIDoc struct {
	json string
}

func (d openAPIDoc) ReadDoc() string { return d.json }

// registerOpenAPIDoc makes the document readable by echo-swagger under the
// default instance name. swag panics on a second registration, so every
// router shares the first one.
var registerOpenAPIDoc = sync.OnceValue(func() error {
	spec, err := servers.GetSwagger()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(spec)
	if err != nil {
		return err
	}
	swag.Register(swag.Name, openAPIDoc{json: string(raw)})
	return nil
})
