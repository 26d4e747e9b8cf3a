package grpc

import (
	"context"
	"math"

	"github.com/DRSN-tech/soares-modas/internal/domain"
	"github.com/DRSN-tech/soares-modas/internal/usecase"
	"github.com/DRSN-tech/soares-modas/pkg/e"
	"github.com/DRSN-tech/soares-modas/pkg/logger"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const productServiceName = "soaresmodas.catalog.v1.ProductService"

// ProductServiceServer — каталог для внутренних клиентов.
// Сообщения передаются как google.protobuf.Struct:
// запрос {"ids": [1, 2]}, ответ {"products": [...], "notFound": [...]}.
type ProductServiceServer interface {
	GetProductsInfo(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

var productServiceDesc = grpc.ServiceDesc{
	ServiceName: productServiceName,
	HandlerType: (*ProductServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetProductsInfo",
			Handler:    getProductsInfoHandler,
		},
	},
	Streams: []grpc.StreamDesc{},
}

func getProductsInfoHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProductServiceServer).GetProductsInfo(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + productServiceName + "/GetProductsInfo",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ProductServiceServer).GetProductsInfo(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

type ProductService struct {
	prUC   usecase.ProductUC
	logger logger.Logger
}

func NewProductService(prUC usecase.ProductUC, logger logger.Logger) *ProductService {
	return &ProductService{prUC: prUC, logger: logger}
}

func (g *ProductService) GetProductsInfo(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	const op = "grpc.GetProductsInfo"

	ids, err := parseIDs(req)
	if err != nil {
		g.logger.Warnf("%s: %v", op, err)
		return nil, GRPCErrorResponse(e.Wrap(op, err))
	}

	res, err := g.prUC.GetMany(ctx, usecase.NewGetProductsReq(ids))
	if err != nil {
		g.logger.Errorf(e.Wrap(op, err), "%s", op)
		return nil, GRPCErrorResponse(e.Wrap(op, err))
	}

	out, err := toProductsInfo(res)
	if err != nil {
		g.logger.Errorf(e.Wrap(op, err), "%s", op)
		return nil, GRPCErrorResponse(e.Wrap(op, err))
	}
	return out, nil
}

func parseIDs(req *structpb.Struct) ([]int64, error) {
	list := req.GetFields()["ids"].GetListValue()
	if list == nil || len(list.GetValues()) == 0 {
		return nil, e.NewValidationError(e.FieldError{Field: "ids", Rule: "required"})
	}

	ids := make([]int64, 0, len(list.GetValues()))
	for _, v := range list.GetValues() {
		n, ok := v.GetKind().(*structpb.Value_NumberValue)
		if !ok || n.NumberValue <= 0 || n.NumberValue != math.Trunc(n.NumberValue) {
			return nil, e.ErrInvalidID
		}
		ids = append(ids, int64(n.NumberValue))
	}
	return ids, nil
}

func toProductsInfo(res *usecase.GetProductsRes) (*structpb.Struct, error) {
	products := make([]any, 0, len(res.Products))
	for i := range res.Products {
		products = append(products, productFields(&res.Products[i]))
	}

	notFound := make([]any, 0, len(res.NotFoundProducts))
	for _, id := range res.NotFoundProducts {
		notFound = append(notFound, id)
	}

	return structpb.NewStruct(map[string]any{
		"products": products,
		"notFound": notFound,
	})
}

func productFields(p *domain.Product) map[string]any {
	var badge any
	if p.Badge != nil {
		badge = *p.Badge
	}

	return map[string]any{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"category":    p.Category,
		"image":       p.Image,
		"badge":       badge,
		"available":   p.Available,
		"stock":       p.Stock,
		"minStock":    p.MinStock,
	}
}
