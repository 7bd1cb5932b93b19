package api

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	mockdb "github.com/Drolfothesgnir/m4tags/db/mock"
	db "github.com/Drolfothesgnir/m4tags/db/sqlc"
	"github.com/Drolfothesgnir/m4tags/m4"
	"github.com/Drolfothesgnir/m4tags/tmpstore"
	mocktmpstore "github.com/Drolfothesgnir/m4tags/tmpstore/mock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func contentHash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

func TestScan(t *testing.T) {
	content := "define(`foo', 1)\nBAR=2\n"
	hash := contentHash(content)
	tags := []m4.Tag{
		{Kind: m4.KindMacro, Name: "foo", Line: 1},
		{Kind: m4.KindVariable, Name: "BAR", Line: 2},
	}
	scanID := uuid.New()

	testCases := []struct {
		name          string
		body          gin.H
		buildStubs    func(store *mockdb.MockStore, cache *mocktmpstore.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "MissingPath",
			body: gin.H{"content": content},
			buildStubs: func(store *mockdb.MockStore, cache *mocktmpstore.MockStore) {
				cache.EXPECT().GetScanResult(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
				requireErrorField(t, recorder, "path")
			},
		},
		{
			name: "NotM4File",
			body: gin.H{"path": "main.go", "content": content},
			buildStubs: func(store *mockdb.MockStore, cache *mocktmpstore.MockStore) {
				cache.EXPECT().GetScanResult(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
				requireErrorField(t, recorder, "path")
			},
		},
		{
			name: "ContentTooLarge",
			body: gin.H{"path": "acinclude.m4", "content": strings.Repeat("x", testConfig.MaxUploadSize+1)},
			buildStubs: func(store *mockdb.MockStore, cache *mocktmpstore.MockStore) {
				cache.EXPECT().GetScanResult(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusRequestEntityTooLarge, recorder.Code)
			},
		},
		{
			name: "BodyTooLarge",
			body: gin.H{"path": "acinclude.m4", "content": strings.Repeat("x", int(maxScanBodySize(testConfig.MaxUploadSize))+1)},
			buildStubs: func(store *mockdb.MockStore, cache *mocktmpstore.MockStore) {
				cache.EXPECT().GetScanResult(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusRequestEntityTooLarge, recorder.Code)

				var resp ErrorResponse
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
				require.Equal(t, ErrContentTooLarge.Error(), resp.Error)
			},
		},
		{
			name: "CacheMiss",
			body: gin.H{"path": "acinclude.m4", "content": content},
			buildStubs: func(store *mockdb.MockStore, cache *mocktmpstore.MockStore) {
				cache.EXPECT().GetScanResult(gomock.Any(), hash).Times(1).Return(nil, tmpstore.ErrCacheMiss)
				cache.EXPECT().
					SaveScanResult(gomock.Any(), hash, gomock.Any(), testConfig.ScanCacheTTL).
					Times(1).
					DoAndReturn(func(_ any, _ string, result tmpstore.ScanResult, _ time.Duration) error {
						require.Equal(t, tags, result.Tags)
						require.False(t, result.ScannedAt.IsZero())
						return nil
					})
				store.EXPECT().CreateScan(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				resp := decodeScanResponse(t, recorder)
				require.False(t, resp.Cached)
				require.Equal(t, hash, resp.Hash)
				require.Equal(t, "acinclude.m4", resp.Path)
				require.Equal(t, tags, resp.Tags)
				require.Nil(t, resp.ScanID)
			},
		},
		{
			name: "CacheHit",
			body: gin.H{"path": "acinclude.m4", "content": content},
			buildStubs: func(store *mockdb.MockStore, cache *mocktmpstore.MockStore) {
				cache.EXPECT().GetScanResult(gomock.Any(), hash).Times(1).
					Return(&tmpstore.ScanResult{Tags: tags[:1]}, nil)
				cache.EXPECT().SaveScanResult(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				resp := decodeScanResponse(t, recorder)
				require.True(t, resp.Cached)
				require.Equal(t, tags[:1], resp.Tags)
			},
		},
		{
			name: "CacheDown",
			body: gin.H{"path": "acinclude.m4", "content": content},
			buildStubs: func(store *mockdb.MockStore, cache *mocktmpstore.MockStore) {
				cache.EXPECT().GetScanResult(gomock.Any(), hash).Times(1).Return(nil, errors.New("connection refused"))
				cache.EXPECT().SaveScanResult(gomock.Any(), hash, gomock.Any(), gomock.Any()).Times(1).
					Return(errors.New("connection refused"))
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				resp := decodeScanResponse(t, recorder)
				require.False(t, resp.Cached)
				require.Equal(t, tags, resp.Tags)
			},
		},
		{
			name: "EmptyContent",
			body: gin.H{"path": "configure.ac", "content": ""},
			buildStubs: func(store *mockdb.MockStore, cache *mocktmpstore.MockStore) {
				cache.EXPECT().GetScanResult(gomock.Any(), contentHash("")).Times(1).Return(nil, tmpstore.ErrCacheMiss)
				cache.EXPECT().SaveScanResult(gomock.Any(), contentHash(""), gomock.Any(), gomock.Any()).Times(1)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				require.Contains(t, recorder.Body.String(), `"tags":[]`)
			},
		},
		{
			name: "Persist",
			body: gin.H{"path": "acinclude.m4", "content": content, "persist": true},
			buildStubs: func(store *mockdb.MockStore, cache *mocktmpstore.MockStore) {
				cache.EXPECT().GetScanResult(gomock.Any(), hash).Times(1).Return(&tmpstore.ScanResult{Tags: tags}, nil)
				store.EXPECT().CreateScan(gomock.Any(), gomock.Any()).Times(1).Return(db.Scan{ID: scanID}, nil)
				store.EXPECT().ReplaceFileTagsTx(gomock.Any(), db.ReplaceFileTagsTxParams{
					ScanID: scanID,
					Path:   "acinclude.m4",
					Hash:   hash,
					Tags:   tags,
				}).Times(1).Return(db.ReplaceFileTagsTxResult{Tags: int64(len(tags))}, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				resp := decodeScanResponse(t, recorder)
				require.NotNil(t, resp.ScanID)
				require.Equal(t, scanID, *resp.ScanID)
			},
		},
		{
			name: "CreateScanErr",
			body: gin.H{"path": "acinclude.m4", "content": content, "persist": true},
			buildStubs: func(store *mockdb.MockStore, cache *mocktmpstore.MockStore) {
				cache.EXPECT().GetScanResult(gomock.Any(), hash).Times(1).Return(&tmpstore.ScanResult{Tags: tags}, nil)
				store.EXPECT().CreateScan(gomock.Any(), gomock.Any()).Times(1).Return(db.Scan{}, errors.New("db down"))
				store.EXPECT().ReplaceFileTagsTx(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
		{
			name: "ReplaceTagsErr",
			body: gin.H{"path": "acinclude.m4", "content": content, "persist": true},
			buildStubs: func(store *mockdb.MockStore, cache *mocktmpstore.MockStore) {
				cache.EXPECT().GetScanResult(gomock.Any(), hash).Times(1).Return(&tmpstore.ScanResult{Tags: tags}, nil)
				store.EXPECT().CreateScan(gomock.Any(), gomock.Any()).Times(1).Return(db.Scan{ID: scanID}, nil)
				store.EXPECT().ReplaceFileTagsTx(gomock.Any(), gomock.Any()).Times(1).
					Return(db.ReplaceFileTagsTxResult{}, db.ErrScanNotFound)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mockdb.NewMockStore(ctrl)
			cache := mocktmpstore.NewMockStore(ctrl)

			tc.buildStubs(store, cache)

			service := newTestService(t, store, cache)
			recorder := httptest.NewRecorder()

			data, err := json.Marshal(tc.body)
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodPost, ScanURL, bytes.NewReader(data))
			require.NoError(t, err)
			request.Header.Set("Content-Type", "application/json")

			service.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func decodeScanResponse(t *testing.T, recorder *httptest.ResponseRecorder) ScanResponse {
	t.Helper()

	var resp ScanResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	return resp
}

func requireErrorField(t *testing.T, recorder *httptest.ResponseRecorder, field string) {
	t.Helper()

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.Equal(t, ErrInvalidParams.Error(), resp.Error)
	require.Len(t, resp.Fields, 1)
	require.Equal(t, field, resp.Fields[0].FieldName)
}
