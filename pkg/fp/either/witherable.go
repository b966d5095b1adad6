package either

import (
	"github.com/ib-77/either/pkg/fp"
	"github.com/ib-77/either/pkg/fp/option"
)

// Witherable is Filterable with an effectful filter function
type Witherable[E any] struct {
	Filterable[E]
}

func GetWitherable[E any](m fp.Monoid[E]) Witherable[E] {
	return Witherable[E]{Filterable: GetFilterable(m)}
}

// Wither is FilterMap where g returns its Option inside an effect.
// g runs once for a Right and not at all for a Left.
func Wither[E, A, B, FOB, FR any](w Witherable[E],
	app fp.Applicative[option.Option[B], FOB, Either[E, B], FR],
	fa Either[E, A], g func(A) FOB) FR {

	if !fa.isRight {
		return app.Of(Left[E, B](fa.left))
	}
	return app.Map(g(fa.right), func(ob option.Option[B]) Either[E, B] {
		return Compact(w.Compactable, Right[E](ob))
	})
}

// Wilt is PartitionMap where g returns its Either inside an effect
func Wilt[E, A, B, C, FBC, FR any](w Witherable[E],
	app fp.Applicative[Either[B, C], FBC, fp.Separated[Either[E, B], Either[E, C]], FR],
	fa Either[E, A], g func(A) FBC) FR {

	if !fa.isRight {
		return app.Of(fp.NewSeparated(Left[E, B](fa.left), Left[E, C](fa.left)))
	}
	return app.Map(g(fa.right), func(bc Either[B, C]) fp.Separated[Either[E, B], Either[E, C]] {
		return Separate(w.Compactable, Right[E](bc))
	})
}
