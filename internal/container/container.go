package container

import (
	"github.com/sirupsen/logrus"

	app "mediscan/internal/application"
	"mediscan/internal/domain/port"
)

type Container struct {
	Analysis *app.AnalysisService
}

func New(
	engine port.ClassificationEngine,
	pre port.ImagePreprocessor,
	explainer port.Explainer,
	renderer port.OverlayRenderer,
	reporter port.ReportGenerator,
	formatter port.DocumentFormatter,
	store port.BlobStore,
	log *logrus.Logger,
) *Container {
	return &Container{
		Analysis: app.NewAnalysisService(engine, pre, explainer, renderer, reporter, formatter, store, log),
	}
}
