package style

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/matzehuels/archtower/pkg/model"
)

// TestProperty_LastMatchingRuleWins checks that the resolved shape always
// comes from the last rule whose selector matches.
func TestProperty_LastMatchingRuleWins(t *testing.T) {
	tagGen := rapid.SampledFrom([]model.Tag{"a", "b", "c", "d"})

	rapid.Check(t, func(rt *rapid.T) {
		s := New()
		type rule struct {
			tag   model.Tag
			shape Shape
		}
		var rules []rule

		n := rapid.IntRange(0, 12).Draw(rt, "rules")
		for i := 0; i < n; i++ {
			r := rule{
				tag:   tagGen.Draw(rt, "selector"),
				shape: Shape(rapid.IntRange(0, len(Shapes())-1).Draw(rt, "shape")),
			}
			require.NoError(rt, s.AddElementStyle(ElementStyle{Tags: []model.Tag{r.tag}, Shape: Ptr(r.shape)}))
			rules = append(rules, r)
		}

		tags := model.NewTagSet(rapid.SliceOfN(tagGen, 0, 4).Draw(rt, "tags")...)

		want := Box
		for _, r := range rules {
			if tags.Has(r.tag) {
				want = r.shape
			}
		}
		require.Equal(rt, want, s.ResolveElement(tags).Shape)
	})
}
