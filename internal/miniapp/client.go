package miniapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	domainerrors "github.com/Maxxvall/BarskieHoromi/internal/domain/errors"
)

// SendOrderRequest - тело POST /api/send-order в форме контракта.
type SendOrderRequest struct {
	Items      []SendOrderItem `json:"items"`
	TotalPrice int             `json:"totalPrice"`
	MealType   string          `json:"mealType"`
	OrderDate  string          `json:"orderDate"`
	UserName   string          `json:"userName,omitempty"`
	UserID     int64           `json:"userId,omitempty"`
}

// SendOrderItem - позиция заказа в запросе.
type SendOrderItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
}

// Client - HTTP клиент к API сервиса. Ошибки транспорта и не-2xx ответы
// поднимаются как TransportError, состояние вызывающего не трогается.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient создаёт клиент для baseURL (без завершающего слэша).
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// FetchPromoCode запрашивает действующий промокод.
func (c *Client) FetchPromoCode(ctx context.Context) (string, error) {
	var resp struct {
		PromoCode string `json:"promoCode"`
	}
	if err := c.getJSON(ctx, "/api/promo-code", &resp); err != nil {
		return "", err
	}
	return resp.PromoCode, nil
}

// FetchSecretVisibility запрашивает флаг видимости секретного раздела.
func (c *Client) FetchSecretVisibility(ctx context.Context) (bool, error) {
	var resp struct {
		IsVisible bool `json:"isVisible"`
	}
	if err := c.getJSON(ctx, "/api/secret-section-visibility", &resp); err != nil {
		return false, err
	}
	return resp.IsVisible, nil
}

// SendOrder отправляет заказ. Ровно один запрос на вызов, без ретраев.
func (c *Client) SendOrder(ctx context.Context, order SendOrderRequest) error {
	body, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("marshal order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/send-order", bytes.NewReader(body))
	if err != nil {
		return domainerrors.NewTransportError("send-order", 0, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domainerrors.NewTransportError("send-order", 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domainerrors.NewTransportError("send-order", resp.StatusCode, nil)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return domainerrors.NewTransportError(path, 0, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domainerrors.NewTransportError(path, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domainerrors.NewTransportError(path, resp.StatusCode, nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domainerrors.NewTransportError(path, resp.StatusCode, err)
	}
	return nil
}
