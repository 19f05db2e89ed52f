package clientdelivery

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/client-bank/internal/domain"
	"github.com/go-petr/client-bank/pkg/errorspkg"
	"github.com/go-petr/client-bank/pkg/web"
	"github.com/golang/mock/gomock"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newServer(t *testing.T) (*gin.Engine, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	h := NewHandler(service)

	server := gin.New()
	server.POST("/clients/personal", h.CreatePersonal)
	server.POST("/clients/business", h.CreateBusiness)
	server.GET("/clients", h.List)
	server.GET("/clients/:id", h.Get)
	server.PUT("/clients/personal/:id", h.UpdatePersonal)
	server.PUT("/clients/business/:id", h.UpdateBusiness)
	server.DELETE("/clients/:id", h.Delete)

	return server, service
}

func send(t *testing.T, server *gin.Engine, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var payload bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&payload).Encode(body))
	}

	req, err := http.NewRequest(method, url, &payload)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)

	return recorder
}

func decode(t *testing.T, recorder *httptest.ResponseRecorder, data any) web.Response {
	t.Helper()

	res := web.Response{Data: data}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&res))

	return res
}

func personal() *domain.PersonalClient {
	return &domain.PersonalClient{
		ClientInfo: domain.ClientInfo{
			ID:          11,
			Name:        "Jane Roe",
			Address:     "1 Main St",
			PhoneNumber: "5551234567",
		},
		TaxID:        "123456789",
		CreditScore:  720,
		YearlyIncome: decimal.RequireFromString("85000"),
		TotalDebt:    decimal.RequireFromString("1200.50"),
	}
}

func business() *domain.BusinessClient {
	return &domain.BusinessClient{
		ClientInfo: domain.ClientInfo{
			ID:          12,
			Name:        "Acme",
			Address:     "2 Side St",
			PhoneNumber: "5559876543",
		},
		EIN:             "987654321",
		BusinessType:    domain.BusinessTypeLLC,
		ContactName:     "Wile Coyote",
		ContactTitle:    domain.ContactTitleOwner,
		TotalAssetValue: decimal.RequireFromString("100000"),
		AnnualRevenue:   decimal.RequireFromString("50000"),
		AnnualProfit:    decimal.RequireFromString("-300"),
	}
}

type personalData struct {
	Type   domain.ClientType `json:"type"`
	Client struct {
		ID          int64  `json:"customer_id"`
		PhoneNumber string `json:"phone_number"`
		TaxID       string `json:"tax_id"`
		CreditScore int32  `json:"credit_score"`
	} `json:"client"`
}

type businessData struct {
	Type   domain.ClientType `json:"type"`
	Client struct {
		ID           int64               `json:"customer_id"`
		PhoneNumber  string              `json:"phone_number"`
		EIN          string              `json:"ein"`
		BusinessType domain.BusinessType `json:"business_type"`
	} `json:"client"`
}

func TestCreatePersonal(t *testing.T) {
	body := map[string]any{
		"name":          "Jane Roe",
		"address":       "1 Main St",
		"phone_number":  "(555) 123-4567",
		"tax_id":        "123-45-6789",
		"credit_score":  720,
		"yearly_income": "85000",
		"total_debt":    "1200.50",
	}

	testCases := []struct {
		name           string
		body           map[string]any
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name: "OK",
			body: body,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ context.Context, c domain.Client) (int64, error) {
						p, ok := c.(*domain.PersonalClient)
						if !ok {
							t.Fatalf("Create got %T, want *domain.PersonalClient", c)
						}

						if p.PhoneNumber != "5551234567" || p.TaxID != "123456789" {
							t.Errorf("Create got unnormalized input %+v", p)
						}

						p.ID = 11

						return 11, nil
					})
			},
			wantStatusCode: http.StatusCreated,
		},
		{
			name: "MissingTaxID",
			body: map[string]any{
				"name":         "Jane Roe",
				"address":      "1 Main St",
				"phone_number": "5551234567",
				"credit_score": 720,
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "TaxID is required",
		},
		{
			name: "InvalidInput",
			body: body,
			buildStubs: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Times(1).Return(int64(0), domain.ErrInvalidInput)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      domain.ErrInvalidInput.Error(),
		},
		{
			name: "DuplicateTaxID",
			body: body,
			buildStubs: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Times(1).Return(int64(0), domain.ErrTaxIDAlreadyExists)
			},
			wantStatusCode: http.StatusConflict,
			wantError:      domain.ErrTaxIDAlreadyExists.Error(),
		},
		{
			name: "InternalServerError",
			body: body,
			buildStubs: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Times(1).Return(int64(0), errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      errorspkg.ErrInternal.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			server, service := newServer(t)
			tc.buildStubs(service)

			recorder := send(t, server, http.MethodPost, "/clients/personal", tc.body)
			require.Equal(t, tc.wantStatusCode, recorder.Code)

			var got personalData

			res := decode(t, recorder, &got)
			require.Equal(t, tc.wantError, res.Error)

			if tc.wantStatusCode != http.StatusCreated {
				return
			}

			require.Equal(t, domain.ClientTypePersonal, got.Type)
			require.Equal(t, int64(11), got.Client.ID)
			require.Equal(t, "(555) 123-4567", got.Client.PhoneNumber)
			require.Equal(t, "***-**-6789", got.Client.TaxID)
			require.Equal(t, int32(720), got.Client.CreditScore)
		})
	}
}

func TestCreateBusiness(t *testing.T) {
	server, service := newServer(t)

	service.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Times(1).
		DoAndReturn(func(_ context.Context, c domain.Client) (int64, error) {
			b, ok := c.(*domain.BusinessClient)
			require.True(t, ok)
			require.Equal(t, "987654321", b.EIN)
			require.Equal(t, domain.BusinessTypeSoleProprietorship, b.BusinessType)
			require.True(t, b.AnnualProfit.Equal(decimal.RequireFromString("-300")))

			b.ID = 12

			return 12, nil
		})

	recorder := send(t, server, http.MethodPost, "/clients/business", map[string]any{
		"name":              "Acme",
		"address":           "2 Side St",
		"phone_number":      "555.987.6543",
		"ein":               "98-7654321",
		"business_type":     "Sole Proprietorship",
		"contact_name":      "Wile Coyote",
		"contact_title":     "Owner",
		"total_asset_value": "100000",
		"annual_revenue":    "50000",
		"annual_profit":     "-300",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	var got businessData
	decode(t, recorder, &got)

	require.Equal(t, domain.ClientTypeBusiness, got.Type)
	require.Equal(t, "98-7654321", got.Client.EIN)
	require.Equal(t, "(555) 987-6543", got.Client.PhoneNumber)
}

func TestGet(t *testing.T) {
	testCases := []struct {
		name           string
		url            string
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name: "OK",
			url:  "/clients/12",
			buildStubs: func(service *MockService) {
				service.EXPECT().Get(gomock.Any(), gomock.Eq(int64(12))).Times(1).Return(business(), nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "InvalidID",
			url:  "/clients/0",
			buildStubs: func(service *MockService) {
				service.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "ID is required",
		},
		{
			name: "NotFound",
			url:  "/clients/12",
			buildStubs: func(service *MockService) {
				service.EXPECT().Get(gomock.Any(), gomock.Any()).Times(1).Return(nil, domain.ErrClientNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrClientNotFound.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			server, service := newServer(t)
			tc.buildStubs(service)

			recorder := send(t, server, http.MethodGet, tc.url, nil)
			require.Equal(t, tc.wantStatusCode, recorder.Code)

			var got businessData

			res := decode(t, recorder, &got)
			require.Equal(t, tc.wantError, res.Error)

			if tc.wantStatusCode == http.StatusOK {
				require.Equal(t, int64(12), got.Client.ID)
				require.Equal(t, "98-7654321", got.Client.EIN)
				require.Equal(t, domain.BusinessTypeLLC, got.Client.BusinessType)
			}
		})
	}
}

func TestList(t *testing.T) {
	server, service := newServer(t)

	service.EXPECT().List(gomock.Any()).Times(1).Return([]domain.Client{personal(), business()}, nil)

	recorder := send(t, server, http.MethodGet, "/clients", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var got []struct {
		Type domain.ClientType `json:"type"`
	}

	decode(t, recorder, &got)

	require.Len(t, got, 2)
	require.Equal(t, domain.ClientTypePersonal, got[0].Type)
	require.Equal(t, domain.ClientTypeBusiness, got[1].Type)
}

func TestSearch(t *testing.T) {
	testCases := []struct {
		name           string
		query          string
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name:  "ByTaxID",
			query: "?tax_id=123-45-6789",
			buildStubs: func(service *MockService) {
				service.EXPECT().GetByTaxID(gomock.Any(), gomock.Eq("123456789")).Times(1).Return(personal(), nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:  "ByEIN",
			query: "?ein=98-7654321",
			buildStubs: func(service *MockService) {
				service.EXPECT().GetByEIN(gomock.Any(), gomock.Eq("987654321")).Times(1).Return(business(), nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:  "ByBusinessName",
			query: "?business_name=Acme",
			buildStubs: func(service *MockService) {
				service.EXPECT().GetByBusinessName(gomock.Any(), gomock.Eq("Acme")).Times(1).Return(business(), nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:  "TwoKeys",
			query: "?tax_id=123456789&ein=987654321",
			buildStubs: func(service *MockService) {
				service.EXPECT().GetByTaxID(gomock.Any(), gomock.Any()).Times(0)
				service.EXPECT().GetByEIN(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "invalid input: " + ErrSearchKey.Error(),
		},
		{
			name:  "NotFound",
			query: "?business_name=Nobody",
			buildStubs: func(service *MockService) {
				service.EXPECT().GetByBusinessName(gomock.Any(), gomock.Any()).Times(1).Return(nil, domain.ErrClientNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrClientNotFound.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			server, service := newServer(t)
			tc.buildStubs(service)

			recorder := send(t, server, http.MethodGet, "/clients"+tc.query, nil)
			require.Equal(t, tc.wantStatusCode, recorder.Code)

			var got struct {
				Type domain.ClientType `json:"type"`
			}

			res := decode(t, recorder, &got)
			require.Equal(t, tc.wantError, res.Error)

			if tc.wantStatusCode == http.StatusOK {
				require.NotEmpty(t, got.Type)
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	personalBody := map[string]any{
		"name":         "Jane Roe",
		"address":      "3 New St",
		"phone_number": "5551234567",
		"tax_id":       "123456789",
		"credit_score": 750,
	}

	testCases := []struct {
		name           string
		url            string
		body           map[string]any
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name: "OK",
			url:  "/clients/personal/11",
			body: personalBody,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Update(gomock.Any(), gomock.Eq(int64(11)), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ context.Context, id int64, c domain.Client) (domain.Client, error) {
						p, ok := c.(*domain.PersonalClient)
						require.True(t, ok)
						require.Equal(t, "3 New St", p.Address)

						p.ID = id

						return p, nil
					})
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "MissingAddress",
			url:  "/clients/personal/11",
			body: map[string]any{"name": "Jane Roe"},
			buildStubs: func(service *MockService) {
				service.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Address is required",
		},
		{
			name: "TypeMismatch",
			url:  "/clients/business/11",
			body: map[string]any{
				"name":          "Acme",
				"address":       "2 Side St",
				"phone_number":  "5559876543",
				"ein":           "987654321",
				"business_type": "LLC",
				"contact_name":  "Wile Coyote",
				"contact_title": "Owner",
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Update(gomock.Any(), gomock.Eq(int64(11)), gomock.Any()).
					Times(1).
					Return(nil, domain.ErrClientNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrClientNotFound.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			server, service := newServer(t)
			tc.buildStubs(service)

			recorder := send(t, server, http.MethodPut, tc.url, tc.body)
			require.Equal(t, tc.wantStatusCode, recorder.Code)

			var got personalData

			res := decode(t, recorder, &got)
			require.Equal(t, tc.wantError, res.Error)

			if tc.wantStatusCode == http.StatusOK {
				require.Equal(t, int64(11), got.Client.ID)
				require.Equal(t, int32(750), got.Client.CreditScore)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		server, service := newServer(t)
		service.EXPECT().Delete(gomock.Any(), gomock.Eq(int64(11))).Times(1).Return(nil)

		recorder := send(t, server, http.MethodDelete, "/clients/11", nil)
		require.Equal(t, http.StatusNoContent, recorder.Code)
	})

	t.Run("NotFound", func(t *testing.T) {
		server, service := newServer(t)
		service.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(1).Return(domain.ErrClientNotFound)

		recorder := send(t, server, http.MethodDelete, "/clients/11", nil)
		require.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("Blocked", func(t *testing.T) {
		server, service := newServer(t)

		blocked := &domain.AccountDeletionBlockedError{
			ClientID: 11,
			Accounts: []domain.BlockingAccount{
				{AccountID: 7, Type: domain.AccountTypeChecking, Balance: decimal.RequireFromString("250.00")},
			},
		}
		service.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(1).Return(blocked)

		recorder := send(t, server, http.MethodDelete, "/clients/11", nil)
		require.Equal(t, http.StatusConflict, recorder.Code)

		var got domain.AccountDeletionBlockedError

		res := decode(t, recorder, &got)
		require.Equal(t, domain.ErrAccountDeletionBlocked.Error(), res.Error)
		require.Equal(t, int64(11), got.ClientID)
		require.Len(t, got.Accounts, 1)
		require.Equal(t, int64(7), got.Accounts[0].AccountID)
		require.True(t, got.Accounts[0].Balance.Equal(decimal.RequireFromString("250")))
	})

	t.Run("InternalServerError", func(t *testing.T) {
		server, service := newServer(t)
		service.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(1).Return(errorspkg.ErrInternal)

		recorder := send(t, server, http.MethodDelete, "/clients/11", nil)
		require.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}
