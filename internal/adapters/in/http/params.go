package http

import (
	"fmt"
	"net/http"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

var pathParamOptions = runtime.BindStyledParameterOptions{
	ParamLocation: runtime.ParamLocationPath,
	Explode:       false,
	Required:      true,
}

func restaurantParam(ctx echo.Context) (kernel.RestaurantID, error) {
	var raw string
	if err := runtime.BindStyledParameterWithOptions(
		"simple", "restaurantId", ctx.Param("restaurantId"), &raw, pathParamOptions,
	); err != nil {
		return kernel.RestaurantID{}, invalidParam("restaurantId", err)
	}
	return kernel.ParseRestaurantID(raw)
}

func sequenceParam(ctx echo.Context, name string) (kernel.SequenceID, error) {
	var raw int64
	if err := runtime.BindStyledParameterWithOptions(
		"simple", name, ctx.Param(name), &raw, pathParamOptions,
	); err != nil {
		return 0, invalidParam(name, err)
	}
	id, err := kernel.NewSequenceID(raw)
	if err != nil {
		return 0, invalidParam(name, err)
	}
	return id, nil
}

func queryParam(ctx echo.Context, name string, dest any) error {
	if err := runtime.BindQueryParameter("form", true, false, name, ctx.QueryParams(), dest); err != nil {
		return invalidParam(name, err)
	}
	return nil
}

func invalidParam(name string, err error) error {
	return echo.NewHTTPError(http.StatusBadRequest,
		fmt.Sprintf("Invalid format for parameter %s: %s", name, err)).SetInternal(err)
}

func invalidBody(err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body").SetInternal(err)
}

func optionalSequenceID(param string, v *int64) (*kernel.SequenceID, error) {
	if v == nil {
		return nil, nil
	}
	id, err := kernel.NewSequenceID(*v)
	if err != nil {
		return nil, invalidParam(param, err)
	}
	return &id, nil
}

func toModifications(in []Modification) ([]order.Modification, error) {
	mods := make([]order.Modification, 0, len(in))
	for _, m := range in {
		mod, err := order.NewModification(order.ModOperation(m.Op), m.Ingredient)
		if err != nil {
			return nil, err
		}
		mods = append(mods, mod)
	}
	return mods, nil
}

func toLineItemInputs(in []NewLineItem) ([]commands.LineItemInput, error) {
	lines := make([]commands.LineItemInput, 0, len(in))
	for _, li := range in {
		mods, err := toModifications(li.Mods)
		if err != nil {
			return nil, err
		}
		lines = append(lines, commands.LineItemInput{
			MenuItemID: kernel.SequenceID(li.MenuItemId),
			Note:       li.Note,
			Mods:       mods,
		})
	}
	return lines, nil
}

func toPatchLineItemInputs(in []PatchLineItem) ([]commands.PatchLineItemInput, error) {
	lines := make([]commands.PatchLineItemInput, 0, len(in))
	for _, li := range in {
		mods, err := toModifications(li.Mods)
		if err != nil {
			return nil, err
		}
		var id *kernel.SequenceID
		if li.Id != nil {
			v := kernel.SequenceID(*li.Id)
			id = &v
		}
		lines = append(lines, commands.PatchLineItemInput{
			ID:         id,
			MenuItemID: kernel.SequenceID(li.MenuItemId),
			Note:       li.Note,
			Mods:       mods,
			Ready:      li.IsReady,
		})
	}
	return lines, nil
}

type target struct {
	restaurantID kernel.RestaurantID
	orderID      kernel.SequenceID
}

func orderTarget(ctx echo.Context) (target, error) {
	restaurantID, err := restaurantParam(ctx)
	if err != nil {
		return target{}, err
	}
	orderID, err := sequenceParam(ctx, "orderId")
	if err != nil {
		return target{}, err
	}
	return target{restaurantID: restaurantID, orderID: orderID}, nil
}
