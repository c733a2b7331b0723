// Copyright 2020 Anapaya Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build linux

package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/sixlowpan/edgerouter/edge"
	"github.com/sixlowpan/edgerouter/edge/config"
	api "github.com/sixlowpan/edgerouter/edge/mgmtapi"
	"github.com/sixlowpan/edgerouter/edge/underlay"
	"github.com/sixlowpan/edgerouter/pkg/log"
	"github.com/sixlowpan/edgerouter/pkg/private/processmetrics"
	"github.com/sixlowpan/edgerouter/pkg/private/serrors"
	"github.com/sixlowpan/edgerouter/private/app/launcher"
)

var globalCfg config.Config

func main() {
	application := launcher.Application{
		TOMLConfig: &globalCfg,
		ShortName:  "6LoWPAN Edge Router",
		Main:       realMain,
	}
	application.Run()
}

func realMain(ctx context.Context) error {
	if err := processmetrics.Init(prometheus.DefaultRegisterer); err != nil {
		log.Info("Process metrics unavailable", "err", err)
	}
	link := &underlay.TUNLink{Name: globalCfg.Edge.Interface}
	defer link.Close()
	router := &edge.Router{
		PANID:       globalCfg.Edge.PAN(),
		MaxContexts: globalCfg.Edge.MaxContexts,
		MaxPrefixes: globalCfg.Edge.MaxPrefixes,
		Link:        link,
		Iface:       &underlay.NetlinkInterface{Name: globalCfg.Edge.Interface},
		Metrics:     edge.NewMetrics(),
	}
	ctx, logger := log.WithLabels(ctx, "element", globalCfg.General.ID)
	err := router.Initialize(ctx, globalCfg.Edge.Transceiver, globalCfg.Edge.RouterAddr)
	if err != nil {
		return serrors.Wrap("initializing edge router", err)
	}
	if err := globalCfg.Edge.Bootstrap(router); err != nil {
		return err
	}

	g, errCtx := errgroup.WithContext(ctx)
	// Initialize and start the management API.
	if globalCfg.API.Addr != "" {
		logger.Info("Exposing API", "addr", globalCfg.API.Addr)
		mgmtServer := &http.Server{
			Addr:    globalCfg.API.Addr,
			Handler: api.Handler(&api.Server{Router: router}),
		}
		g.Go(func() error {
			defer log.HandlePanic()
			<-errCtx.Done()
			return mgmtServer.Close()
		})
		g.Go(func() error {
			defer log.HandlePanic()
			err := mgmtServer.ListenAndServe()
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return serrors.Wrap("serving management API", err)
			}
			return nil
		})
	}
	g.Go(func() error {
		defer log.HandlePanic()
		return globalCfg.Metrics.ServePrometheus(errCtx)
	})
	g.Go(func() error {
		defer log.HandlePanic()
		<-errCtx.Done()
		logger.Info("Edge router shutting down")
		return nil
	})
	return g.Wait()
}
