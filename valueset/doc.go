// Package valueset provides the value-set item API.
//
// Collection reads and creates expand route templates; updates and removals
// follow the put and delete links of a previously fetched item.
//
//	items := valueset.NewItemService(transport, valueset.WithDefaults(params.Defaults{PageSize: 10}))
//	page, err := items.Find(ctx, "colors", params.FindOptions{SearchQuery: "re"})
//	if err != nil {
//	    return err
//	}
//	item := page.Items[0]
//	item.Payload.Value = "red"
//	_, err = items.Update(ctx, item)
package valueset
