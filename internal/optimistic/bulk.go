package optimistic

import (
	"context"
	"fmt"
)

// Collection adapts a slice-backed collection for the bulk helpers. Get and
// Set read and replace the whole slice; ID and Label extract the identifier
// and display name of one element.
type Collection[T any] struct {
	Get   func() []T
	ID    func(T) string
	Label func(T) string
	Set   func([]T)
}

// DeleteItems optimistically removes the elements with the given ids from
// the collection, confirming with one remote call for the whole batch. The
// rollback restores the exact pre-delete slice. Success and error messages
// pluralize on the number of matched elements; noun names one element
// ("item", "user").
func DeleteItems[T any](
	ctx context.Context,
	c *Coordinator,
	key string,
	col Collection[T],
	ids []string,
	remote func(ctx context.Context, ids []string) error,
	noun string,
) error {
	before := col.Get()
	wanted := idSet(ids)

	matched, labels := 0, []string{}
	after := make([]T, 0, len(before))
	for _, element := range before {
		if _, ok := wanted[col.ID(element)]; ok {
			matched++
			labels = append(labels, col.Label(element))
			continue
		}
		after = append(after, element)
	}

	op := Operation[struct{}]{
		Apply:          func() { col.Set(after) },
		ErrorMessage:   fmt.Sprintf("Failed to delete %s", describe(matched, labels, noun)),
		Key:            key,
		Rollback:       func() { col.Set(before) },
		SuccessMessage: fmt.Sprintf("Deleted %s", describe(matched, labels, noun)),
		Remote: func(ctx context.Context) (struct{}, error) {
			return struct{}{}, remote(ctx, ids)
		},
	}
	_, err := Perform(ctx, c, op)
	return err
}

// UpdateItems optimistically applies update to the elements with the given
// ids, confirming with one remote call for the whole batch. verb describes
// the change in past tense ("Shared", "Disabled").
func UpdateItems[T any](
	ctx context.Context,
	c *Coordinator,
	key string,
	col Collection[T],
	ids []string,
	update func(T) T,
	remote func(ctx context.Context, ids []string) error,
	verb, noun string,
) error {
	before := col.Get()
	wanted := idSet(ids)

	matched, labels := 0, []string{}
	after := make([]T, len(before))
	for i, element := range before {
		if _, ok := wanted[col.ID(element)]; ok {
			matched++
			labels = append(labels, col.Label(element))
			after[i] = update(element)
			continue
		}
		after[i] = element
	}

	op := Operation[struct{}]{
		Apply:          func() { col.Set(after) },
		ErrorMessage:   fmt.Sprintf("Failed to update %s", describe(matched, labels, noun)),
		Key:            key,
		Rollback:       func() { col.Set(before) },
		SuccessMessage: fmt.Sprintf("%s %s", verb, describe(matched, labels, noun)),
		Remote: func(ctx context.Context) (struct{}, error) {
			return struct{}{}, remote(ctx, ids)
		},
	}
	_, err := Perform(ctx, c, op)
	return err
}

func idSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// describe renders "\"Label\"" for a single element and "3 items" for more.
func describe(count int, labels []string, noun string) string {
	if count == 1 && len(labels) == 1 {
		return fmt.Sprintf("%q", labels[0])
	}
	return fmt.Sprintf("%d %ss", count, noun)
}
