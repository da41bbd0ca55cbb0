package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	quotesUrlPath   = "/v2/quotes"
	shiftsUrlPath   = "/v2/shifts"
	checkoutUrlPath = "/v2/checkout"
	pairUrlPath     = "/v2/pair"
)

type Quote struct {
	ID           string          `json:"id" validate:"required"`
	Rate         decimal.Decimal `json:"rate" validate:"required"`
	SettleAmount decimal.Decimal `json:"settleAmount" validate:"required"`
	ExpiresAt    time.Time       `json:"expiresAt" validate:"required"`
}

type ShiftOrder struct {
	ID             string    `json:"id" validate:"required"`
	DepositAddress string    `json:"depositAddress" validate:"required"`
	DepositMemo    string    `json:"depositMemo"`
	ExpiresAt      time.Time `json:"expiresAt" validate:"required"`
}

type ShiftStatus struct {
	ID          string    `json:"id" validate:"required"`
	Status      string    `json:"status" validate:"required"`
	DepositHash string    `json:"depositHash"`
	SettleHash  string    `json:"settleHash"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Checkout struct {
	ID  string `json:"id" validate:"required"`
	URL string `json:"url" validate:"required,url"`
}

type PairPrice struct {
	Rate decimal.Decimal `json:"rate" validate:"required"`
}

type SideShiftController struct {
	client *http.Client
	logger *logrus.Logger

	validate *validator.Validate

	baseUrl     string
	apiKey      string
	affiliateId string
}

func NewSideShiftController(
	client *http.Client,
	baseUrl string,
	apiKey string,
	affiliateId string,
	logger *logrus.Logger,
) *SideShiftController {
	return &SideShiftController{
		client:      client,
		validate:    validator.New(),
		baseUrl:     baseUrl,
		apiKey:      apiKey,
		affiliateId: affiliateId,
		logger:      logger,
	}
}

func (c *SideShiftController) GetQuote(fromAsset, fromNetwork, toAsset, toNetwork string, amount decimal.Decimal) (*Quote, error) {
	body := map[string]string{
		"depositCoin":    fromAsset,
		"depositNetwork": fromNetwork,
		"settleCoin":     toAsset,
		"settleNetwork":  toNetwork,
		"depositAmount":  amount.String(),
		"affiliateId":    c.affiliateId,
	}

	var out Quote
	if err := c.send(http.MethodPost, quotesUrlPath, body, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *SideShiftController) CreateOrder(quoteID, settleAddress, refundAddress string) (*ShiftOrder, error) {
	body := map[string]string{
		"quoteId":       quoteID,
		"settleAddress": settleAddress,
		"refundAddress": refundAddress,
		"affiliateId":   c.affiliateId,
	}

	var out ShiftOrder
	if err := c.send(http.MethodPost, shiftsUrlPath, body, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *SideShiftController) GetOrderStatus(orderID string) (*ShiftStatus, error) {
	var out ShiftStatus
	if err := c.send(http.MethodGet, path.Join(shiftsUrlPath, orderID), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *SideShiftController) CreateCheckout(toAsset, toNetwork, settleAddress string, amount decimal.Decimal) (*Checkout, error) {
	body := map[string]string{
		"settleCoin":    toAsset,
		"settleNetwork": toNetwork,
		"settleAddress": settleAddress,
		"settleAmount":  amount.String(),
		"affiliateId":   c.affiliateId,
	}

	var out Checkout
	if err := c.send(http.MethodPost, checkoutUrlPath, body, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *SideShiftController) GetPairRate(fromAsset, fromNetwork, toAsset, toNetwork string) (*PairPrice, error) {
	pair := fmt.Sprintf("%s-%s/%s-%s", fromAsset, fromNetwork, toAsset, toNetwork)

	var out PairPrice
	if err := c.send(http.MethodGet, path.Join(pairUrlPath, pair), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *SideShiftController) send(method, urlPath string, body interface{}, out interface{}) error {
	baseURL, err := url.Parse(c.baseUrl)
	if err != nil {
		return err
	}

	baseURL.Path = path.Join(baseURL.Path, urlPath)

	var reqBody []byte
	if body != nil {
		if reqBody, err = json.Marshal(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequest(method, baseURL.String(), bytes.NewReader(reqBody))
	if err != nil {
		return err
	}

	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("x-sideshift-secret", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return c.apiError(resp, respBody)
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return errors.Wrapf(err, "sideshift: decode %s", urlPath)
	}

	if err := c.validate.Struct(out); err != nil {
		return errors.Wrapf(err, "sideshift: invalid response %s", urlPath)
	}

	return nil
}

func (c *SideShiftController) apiError(resp *http.Response, body []byte) error {
	apiErr := APIError{
		HTTPStatus: resp.StatusCode,
	}

	var errStruct struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}

	if err := json.Unmarshal(body, &errStruct); err == nil {
		apiErr.Code = errStruct.Error.Code
		apiErr.Message = errStruct.Error.Message
	}

	if apiErr.Message == "" {
		apiErr.Message = string(body)
	}

	if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
		if sec, err := strconv.Atoi(retryAfter); err == nil {
			apiErr.RetryAfter = sec
		}
	}

	return &apiErr
}
