package valueset

import (
	"context"
	"net/http"

	"github.com/kbukum/baasic/hal"
	"github.com/kbukum/baasic/httpclient/rest"
	"github.com/kbukum/baasic/logger"
	"github.com/kbukum/baasic/params"
	"github.com/kbukum/baasic/route"
	"github.com/kbukum/baasic/validation"
)

// Routes are the value-set item route templates.
type Routes struct {
	Find   *route.Template
	Get    *route.Template
	Create *route.Template
}

var defaultRoutes = Routes{
	Find:   route.MustParse("value-sets/{setName}/items/{?searchQuery,page,rpp,sort,embed,fields}"),
	Get:    route.MustParse("value-sets/{setName}/items/{id}/{?embed,fields}"),
	Create: route.MustParse("value-sets/{setName}/items/"),
}

// ItemService is the value-set item API.
type ItemService struct {
	transport rest.Transport
	defaults  params.Defaults
	log       *logger.Logger
}

// Option configures an ItemService.
type Option func(*ItemService)

// WithDefaults sets the values injected underneath caller find options.
func WithDefaults(d params.Defaults) Option {
	return func(s *ItemService) { s.defaults = d }
}

// WithLogger sets the service logger.
func WithLogger(log *logger.Logger) Option {
	return func(s *ItemService) { s.log = log }
}

// NewItemService creates a value-set item service.
func NewItemService(transport rest.Transport, opts ...Option) *ItemService {
	s := &ItemService{transport: transport, log: logger.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.WithComponent("valueset")
	return s
}

// Routes returns the route templates the service expands.
func (s *ItemService) Routes() Routes {
	return defaultRoutes
}

// Find returns a page of items in setName.
func (s *ItemService) Find(ctx context.Context, setName string, opts params.FindOptions) (*hal.Collection[Item], error) {
	p := params.Resolve(s.defaults, route.PathParams{"setName": setName}, opts.Query())
	u := s.expand(ctx, "find", defaultRoutes.Find, p)

	resp, err := rest.Get[hal.Collection[Item]](ctx, s.transport, u)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Get returns a single item.
func (s *ItemService) Get(ctx context.Context, setName, id string, opts params.GetOptions) (*hal.Resource[Item], error) {
	p := params.Resolve(params.Defaults{}, route.PathParams{"setName": setName, "id": id}, opts.Query())
	u := s.expand(ctx, "get", defaultRoutes.Get, p)

	resp, err := rest.Get[hal.Resource[Item]](ctx, s.transport, u)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Create adds item to setName.
func (s *ItemService) Create(ctx context.Context, setName string, item Item) (*hal.Resource[Item], error) {
	if err := validation.Required("value", item.Value); err != nil {
		return nil, err
	}
	payload := params.CreateParams(item)
	u := s.expand(ctx, "create", defaultRoutes.Create, route.Params{"setName": setName})

	resp, err := rest.Post[hal.Resource[Item]](ctx, s.transport, u, payload.Model)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Update sends item to its put link.
func (s *ItemService) Update(ctx context.Context, item *hal.Resource[Item]) (*hal.Resource[Item], error) {
	payload := params.UpdateParams(item)
	href, err := hal.ResolveLink(payload.Model, hal.RelPut)
	if err != nil {
		return nil, err
	}
	s.log.WithContext(ctx).Debug("resolved link", logger.Fields(logger.FieldOperation, "update", logger.FieldRel, hal.RelPut, logger.FieldURL, href))

	resp, err := rest.Put[hal.Resource[Item]](ctx, s.transport, href, payload.Model)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Remove deletes item through its delete link.
func (s *ItemService) Remove(ctx context.Context, item *hal.Resource[Item]) error {
	payload := params.RemoveParams(item)
	href, err := hal.ResolveLink(payload.Model, hal.RelDelete)
	if err != nil {
		return err
	}
	s.log.WithContext(ctx).Debug("resolved link", logger.Fields(logger.FieldOperation, "remove", logger.FieldRel, hal.RelDelete, logger.FieldURL, href))

	_, err = rest.Send[struct{}](ctx, s.transport, http.MethodDelete, href, nil)
	return err
}

func (s *ItemService) expand(ctx context.Context, op string, t *route.Template, p route.Params) string {
	log := s.log.WithContext(ctx)
	if missing := t.Missing(p); len(missing) > 0 {
		log.Warn("missing route parameters", logger.Fields(logger.FieldOperation, op, "missing", missing))
	}
	u := t.Expand(p)
	log.Debug("resolved route", logger.Fields(logger.FieldOperation, op, logger.FieldURL, u))
	return u
}
