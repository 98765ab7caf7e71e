package commands

import (
	"context"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/packaging"
	"shipdesk/internal/core/domain/services"
	"shipdesk/internal/core/ports"
)

// ResolvePackageCommandHandler gathers the resolver inputs, resolves the
// package and applies it to the session. Applying a different package resets
// any quoted rates.
type ResolvePackageCommandHandler struct {
	uowFactory UoWFactory
	sessions   ports.SessionRepository
	catalog    ports.FlatRateCatalog
	resolver   services.PackagingResolver
	carrier    string
}

func NewResolvePackageCommandHandler(
	uowFactory UoWFactory,
	sessions ports.SessionRepository,
	catalog ports.FlatRateCatalog,
	resolver services.PackagingResolver,
	carrier string,
) ResolvePackageCommandHandler {
	return ResolvePackageCommandHandler{
		uowFactory: uowFactory,
		sessions:   sessions,
		catalog:    catalog,
		resolver:   resolver,
		carrier:    carrier,
	}
}

func (h ResolvePackageCommandHandler) Handle(ctx context.Context, cmd ResolvePackageCommand) (services.Resolution, error) {
	if err := cmd.Validate(); err != nil {
		return services.Resolution{}, err
	}

	session, err := h.sessions.Get(ctx, cmd.SessionID())
	if err != nil {
		return services.Resolution{}, err
	}

	req := services.ResolveRequest{
		ProductID:   cmd.ProductID(),
		Quantity:    cmd.Quantity(),
		PackageType: cmd.PackageType(),
		TemplateID:  cmd.TemplateID(),
		Rules:       session.Rules(),
	}

	if err = h.loadStoredInputs(ctx, session.OrderID(), &req); err != nil {
		return services.Resolution{}, err
	}

	if req.PackageType == packaging.FlatRate {
		if req.Catalog, err = h.catalog.List(ctx, h.carrier); err != nil {
			return services.Resolution{}, err
		}
	}

	res, err := h.resolver.Resolve(req)
	if err != nil {
		return services.Resolution{}, err
	}

	current, ok := session.Package()
	unchanged := ok && current.IsEqual(res.Package)
	if err = session.ChangePackage(res.Package); err != nil {
		return services.Resolution{}, err
	}
	if unchanged {
		return res, nil
	}
	if err = h.sessions.Update(ctx, session); err != nil {
		return services.Resolution{}, err
	}

	return res, nil
}

func (h ResolvePackageCommandHandler) loadStoredInputs(
	ctx context.Context,
	orderID kernel.OrderID,
	req *services.ResolveRequest,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return err
	}
	if q, ok := o.QuantityOf(req.ProductID); ok {
		req.OrderQuantity = q
	}

	if req.PackageType == packaging.Custom {
		native, ok, dimErr := uow.ProductRepository().GetNativeDimensions(ctx, req.ProductID)
		if dimErr != nil {
			return dimErr
		}
		if ok {
			req.NativeDimensions = &native
		}
	}

	return uow.Commit(ctx)
}
