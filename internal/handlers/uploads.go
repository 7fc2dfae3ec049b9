package handlers

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	credentials "cloud.google.com/go/iam/credentials/apiv1"
	credentialspb "cloud.google.com/go/iam/credentials/apiv1/credentialspb"
	"cloud.google.com/go/storage"
	"github.com/google/uuid"

	"github.com/Esraa00Tarek/SuperStore-sub000/internal/config"
	"github.com/Esraa00Tarek/SuperStore-sub000/internal/firebase"
	"github.com/Esraa00Tarek/SuperStore-sub000/internal/httpjson"
)

var imageContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// Uploads hands admins signed PUT URLs for item images, so catalog documents
// can carry object URLs instead of multi-megabyte inline data URIs.
type Uploads struct {
	cfg     config.Config
	clients *firebase.Clients
	iam     *credentials.IamCredentialsClient
}

func NewUploads(cfg config.Config, clients *firebase.Clients) *Uploads {
	// IAM client is optional; only needed for signed URLs.
	iamClient, _ := credentials.NewIamCredentialsClient(context.Background())
	return &Uploads{cfg: cfg, clients: clients, iam: iamClient}
}

type imageUploadReq struct {
	ItemType    string `json:"itemType"`    // products | crafts
	ContentType string `json:"contentType"` // image/jpeg, image/png, image/webp
}

type imageUploadResp struct {
	UploadURL string `json:"uploadUrl"`
	Method    string `json:"method"`
	PublicURL string `json:"publicUrl"`
	ExpiresAt int64  `json:"expiresAt"`
}

func (h *Uploads) CreateImageUploadURL(w http.ResponseWriter, r *http.Request) {
	var req imageUploadReq
	if err := httpjson.Read(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	ext, ok := imageContentTypes[req.ContentType]
	if !ok {
		httpjson.Error(w, http.StatusBadRequest, "contentType must be an image type")
		return
	}
	typ := strings.ToLower(strings.TrimSpace(req.ItemType))
	if typ != "products" && typ != "crafts" {
		httpjson.Error(w, http.StatusBadRequest, "itemType must be products or crafts")
		return
	}

	objectPath := path.Join("items", typ, uuid.NewString()+ext)
	url, exp, err := h.signedURL(r.Context(), objectPath, req.ContentType)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	httpjson.Write(w, http.StatusOK, imageUploadResp{
		UploadURL: url,
		Method:    "PUT",
		PublicURL: fmt.Sprintf("https://storage.googleapis.com/%s/%s", h.cfg.StorageBucket, objectPath),
		ExpiresAt: exp.Unix(),
	})
}

func (h *Uploads) signedURL(ctx context.Context, objectPath, contentType string) (string, time.Time, error) {
	if h.cfg.StorageBucket == "" {
		return "", time.Time{}, fmt.Errorf("FIREBASE_STORAGE_BUCKET is not set")
	}
	if h.cfg.SignedURLServiceAccountEmail == "" {
		return "", time.Time{}, fmt.Errorf("SIGNED_URL_SERVICE_ACCOUNT_EMAIL is not set")
	}
	if h.iam == nil {
		return "", time.Time{}, fmt.Errorf("IAM credentials client not available")
	}
	exp := time.Now().Add(15 * time.Minute)

	opts := &storage.SignedURLOptions{
		Scheme:         storage.SigningSchemeV4,
		Method:         "PUT",
		Expires:        exp,
		ContentType:    contentType,
		GoogleAccessID: h.cfg.SignedURLServiceAccountEmail,
		SignBytes: func(b []byte) ([]byte, error) {
			name := fmt.Sprintf("projects/-/serviceAccounts/%s", h.cfg.SignedURLServiceAccountEmail)
			resp, err := h.iam.SignBlob(ctx, &credentialspb.SignBlobRequest{
				Name:    name,
				Payload: b,
			})
			if err != nil {
				return nil, err
			}
			return resp.SignedBlob, nil
		},
	}

	url, err := storage.SignedURL(h.cfg.StorageBucket, objectPath, opts)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign url (check service account + permissions): %v", err)
	}
	return url, exp, nil
}
