package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/cetler74/linkuupapp-sub002/internal/domain/entity"
	"github.com/cetler74/linkuupapp-sub002/internal/domain/gateway"
)

// photoGateway is the REST implementation of gateway.PhotoGateway. Uploads
// are sent as a binary multipart payload under the field name "file".
type photoGateway struct {
	client *Client
}

// NewPhotoGateway is the constructor for photoGateway.
func NewPhotoGateway(client *Client) gateway.PhotoGateway {
	return &photoGateway{client: client}
}

// uploadResponse carries the server-side URL of the stored photo.
type uploadResponse struct {
	PhotoURL string `json:"photo_url"`
}

func (g *photoGateway) Upload(ctx context.Context, employeeID uuid.UUID, photo entity.PendingPhoto) (string, error) {
	file, err := os.Open(photo.URI)
	if err != nil {
		return "", errors.Wrap(err, "open photo")
	}
	defer file.Close()

	mimeType := photo.MimeType
	if mimeType == "" {
		mimeType = entity.InferMimeType(photo.Filename)
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, photo.Filename))
	header.Set("Content-Type", mimeType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return "", errors.Wrap(err, "create multipart field")
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", errors.Wrap(err, "copy photo into multipart payload")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "finalize multipart payload")
	}

	path := fmt.Sprintf("/api/employees/%s/photo", employeeID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.client.baseURL+path, &body)
	if err != nil {
		return "", errors.Wrap(err, "build upload request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var resp uploadResponse
	if err := g.client.do(req, &resp); err != nil {
		return "", err
	}

	return resp.PhotoURL, nil
}

func (g *photoGateway) Delete(ctx context.Context, employeeID uuid.UUID) error {
	path := fmt.Sprintf("/api/employees/%s/photo", employeeID)

	return g.client.doJSON(ctx, http.MethodDelete, path, nil, nil)
}
