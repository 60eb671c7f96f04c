package server

import (
	"context"
	"fmt"

	"github.com/NeuralTrust/ReelGate/pkg/config"
	"github.com/NeuralTrust/ReelGate/pkg/infra/prometheus"
	"github.com/NeuralTrust/ReelGate/pkg/server/router"
	"github.com/sirupsen/logrus"
)

type (
	ProxyServerDI struct {
		Config  *config.Config
		Logger  *logrus.Logger
		Routers []router.ServerRouter
	}
	ProxyServer struct {
		*BaseServer
	}
)

func NewProxyServer(di ProxyServerDI) *ProxyServer {
	if di.Config.Metrics.Enabled {
		prometheus.Initialize(prometheus.MetricsConfig{
			EnableLatency:         di.Config.Metrics.EnableLatency,
			EnableUpstreamLatency: di.Config.Metrics.EnableUpstream,
		})
	}

	s := &ProxyServer{
		BaseServer: NewBaseServer(di.Config, di.Logger).WithRouters(di.Routers...),
	}
	s.BaseServer.setupMetricsEndpoint()
	return s
}

func (s *ProxyServer) Run() error {
	addr := fmt.Sprintf("%s:%d", s.Config.Server.Host, s.Config.Server.Port)
	s.Logger.WithField("addr", addr).Info("starting proxy server")
	return s.Router.Listen(addr)
}

func (s *ProxyServer) Shutdown(ctx context.Context) error {
	s.Logger.Info("shutting down proxy server")
	return s.shutdown(ctx)
}
