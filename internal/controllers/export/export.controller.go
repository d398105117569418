package exportController

import (
	"context"
	"errors"
	appContext "toolcrib/internal/context"
	syncController "toolcrib/internal/controllers/sync"
	"toolcrib/internal/services"
	"toolcrib/internal/state"
	"toolcrib/internal/types"

	logger "github.com/Bparsons0904/goLogger"
)

var successNotices = map[types.ExportFormat]string{
	types.ExportPDF:   "PDF exportado com sucesso!",
	types.ExportExcel: "Excel exportado com sucesso!",
}

var failureNotices = map[types.ExportFormat]string{
	types.ExportPDF:   "Erro ao exportar PDF",
	types.ExportExcel: "Erro ao exportar Excel",
}

type ExportController struct {
	api    *services.APIService
	export *services.ExportService
	store  *state.Store
	log    logger.Logger
}

type ExportControllerInterface interface {
	ExportFile(
		ctx context.Context,
		resource types.ExportResource,
		format types.ExportFormat,
	) (string, error)
	Inspect(path string) (*services.WorkbookSummary, error)
}

func New(services services.Service, store *state.Store) ExportControllerInterface {
	return &ExportController{
		api:    services.API,
		export: services.Export,
		store:  store,
		log:    logger.New("exportController"),
	}
}

// ExportFile downloads the export and returns the path it was saved to. The
// server's error body is ignored; only the per-format notice is shown.
func (ec *ExportController) ExportFile(
	ctx context.Context,
	resource types.ExportResource,
	format types.ExportFormat,
) (string, error) {
	ctx = appContext.WithTrace(ctx)
	log := ec.log.TraceFromContext(ctx).Function("ExportFile")

	payload, err := ec.api.Export(ctx, resource, format)
	if err != nil {
		notice := failureNotices[format]
		if errors.Is(err, services.ErrTransport) {
			notice = syncController.ConnectionFailedNotice
		}
		ec.store.Dispatch(state.ErrorNoticed{Message: notice})
		return "", log.Err("export download failed", err, "resource", resource, "format", format)
	}

	path, err := ec.export.Save(resource, format, payload)
	if err != nil {
		ec.store.Dispatch(state.ErrorNoticed{Message: failureNotices[format]})
		return "", log.Err("export could not be saved", err, "resource", resource, "format", format)
	}

	ec.store.Dispatch(state.SuccessNoticed{Message: successNotices[format]})
	return path, nil
}

func (ec *ExportController) Inspect(path string) (*services.WorkbookSummary, error) {
	return ec.export.InspectWorkbook(path)
}
