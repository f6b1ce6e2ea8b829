package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/kdudkov/goutils/request"

	"github.com/ogerber/townpicker/internal/model"
)

const httpTimeout = time.Second * 3

type RemoteAPI struct {
	logger *slog.Logger
	addr   string
	client *http.Client
}

func NewRemoteAPI(addr string) *RemoteAPI {
	return &RemoteAPI{
		addr:   addr,
		logger: slog.Default().With("logger", "remote_api"),
		client: &http.Client{Transport: &http.Transport{ResponseHeaderTimeout: httpTimeout}},
	}
}

func (r *RemoteAPI) request(path string) *request.Request {
	return request.New(r.client, r.logger).URL(fmt.Sprintf("http://%s%s", r.addr, path))
}

func (r *RemoteAPI) GetTowns(ctx context.Context) ([]*model.TownDTO, error) {
	dat := make([]*model.TownDTO, 0)

	err := r.request("/town").Args(map[string]string{"limit": "10000"}).GetJSON(ctx, &dat)

	return dat, err
}

func (r *RemoteAPI) Pick(ctx context.Context, n int) (*model.PickDTO, error) {
	res := new(model.PickDTO)

	err := r.request("/pick").Args(map[string]string{"n": strconv.Itoa(n)}).GetJSON(ctx, res)

	if err != nil {
		return nil, err
	}

	return res, nil
}

func (r *RemoteAPI) GetPicks(ctx context.Context) ([]*model.PickDTO, error) {
	dat := make([]*model.PickDTO, 0)

	err := r.request("/picks").GetJSON(ctx, &dat)

	return dat, err
}
