package marketclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"golang.org/x/xerrors"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/ethereum"
	"github.com/x-xyz/marketcore/base/log"
	"github.com/x-xyz/marketcore/base/metrics"
	"github.com/x-xyz/marketcore/domain/market"
)

const defaultTimeout = 10 * time.Second

type envelope struct {
	Data   json.RawMessage `json:"data"`
	Status string          `json:"status"`
}

type client struct {
	cfg     *ClientCfg
	address string
	met     metrics.Service

	mu    sync.RWMutex
	token string
}

func NewClient(cfg *ClientCfg) Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	return &client{
		cfg:     cfg,
		address: ethereum.AddressOf(&cfg.Key.PublicKey),
		met:     metrics.New("marketclient"),
	}
}

func (cl *client) Login(c ctx.Ctx) error {
	var nonce string
	if err := cl.do(c, http.MethodGet, "/auth/nonce/"+cl.address, nil, &nonce); err != nil {
		c.WithField("err", err).Error("get nonce failed")
		return err
	}

	tmpl := struct {
		Template string `json:"template"`
	}{}
	if err := cl.do(c, http.MethodGet, "/auth/signingMsgTemplate", nil, &tmpl); err != nil {
		c.WithField("err", err).Error("get signing template failed")
		return err
	}

	sig, err := ethereum.SignMsg(cl.cfg.Key, []byte(fmt.Sprintf(tmpl.Template, nonce)))
	if err != nil {
		c.WithField("err", err).Error("ethereum.SignMsg failed")
		return err
	}

	var token string
	payload := map[string]string{"address": cl.address, "signature": hexutil.Encode(sig)}
	if err := cl.do(c, http.MethodPost, "/auth/login", payload, &token); err != nil {
		c.WithField("err", err).Error("login failed")
		return err
	}

	cl.mu.Lock()
	cl.token = token
	cl.mu.Unlock()
	c.WithField("address", cl.address).Info("logged in")
	return nil
}

func (cl *client) Auctions(c ctx.Ctx, offset, count int) (int, []uint64, error) {
	return cl.page(c, "/market/auctions", offset, count)
}

func (cl *client) FixedSales(c ctx.Ctx, offset, count int) (int, []uint64, error) {
	return cl.page(c, "/market/fixed", offset, count)
}

func (cl *client) page(c ctx.Ctx, path string, offset, count int) (int, []uint64, error) {
	params := url.Values{
		"offset": {strconv.Itoa(offset)},
		"count":  {strconv.Itoa(count)},
	}
	res := struct {
		Total   int      `json:"total"`
		Indices []uint64 `json:"indices"`
	}{}
	if err := cl.do(c, http.MethodGet, path+"?"+params.Encode(), nil, &res); err != nil {
		return 0, nil, err
	}
	return res.Total, res.Indices, nil
}

func (cl *client) Listing(c ctx.Ctx, index uint64) (*Listing, error) {
	res := &Listing{}
	if err := cl.do(c, http.MethodGet, fmt.Sprintf("/market/listings/%d", index), nil, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (cl *client) EndAuction(c ctx.Ctx, index uint64) error {
	return cl.do(c, http.MethodPost, fmt.Sprintf("/market/listings/%d/end", index), nil, nil)
}

func (cl *client) UnlistFixedSale(c ctx.Ctx, index uint64) error {
	return cl.do(c, http.MethodDelete, fmt.Sprintf("/market/listings/fixed/%d", index), nil, nil)
}

func (cl *client) do(c ctx.Ctx, method, path string, payload, result interface{}) error {
	defer cl.met.BumpTime("request.latency", "method", method).End()

	c, cancel := ctx.WithTimeout(c, cl.cfg.Timeout)
	defer cancel()

	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(c, method, cl.cfg.BaseUrl+path, &body)
	if err != nil {
		c.WithFields(log.Fields{"path": path, "err": err}).Error("NewRequestWithContext failed")
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	cl.mu.RLock()
	if cl.token != "" {
		req.Header.Set("Authorization", "Bearer "+cl.token)
	}
	cl.mu.RUnlock()

	resp, err := cl.cfg.HttpClient.Do(req)
	if err != nil {
		cl.met.BumpSum("request.err", 1)
		c.WithFields(log.Fields{"path": path, "err": err}).Error("client.Do failed")
		return err
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		c.WithFields(log.Fields{"path": path, "err": err}).Error("failed to read body")
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	env := envelope{}
	if err := json.Unmarshal(data, &env); err != nil {
		c.WithFields(log.Fields{"path": path, "statusCode": resp.StatusCode}).Error("json.Unmarshal failed")
		return xerrors.Errorf("%w: %d", ErrStatusCodeNotOk, resp.StatusCode)
	}
	if resp.StatusCode >= 300 {
		me := struct {
			Code market.Code `json:"code"`
		}{}
		if json.Unmarshal(env.Data, &me) == nil {
			if sentinel, ok := market.FromCode(me.Code); ok {
				return sentinel
			}
		}
		return xerrors.Errorf("%w: %d %s", ErrStatusCodeNotOk, resp.StatusCode, env.Data)
	}

	if result == nil {
		return nil
	}
	return json.Unmarshal(env.Data, result)
}
