package search

import "github.com/pacsight/studyfind/internal/domain/study"

// reconcile flattens result batches in dispatch order into one collection,
// dropping records whose study instance UID has already been seen. The first
// occurrence wins; equality of every other field is irrelevant. Relative
// first-seen order is preserved until sorting is applied.
func reconcile(batches [][]study.Study) []study.Study {
	seen := make(map[string]struct{})
	var merged []study.Study
	for _, batch := range batches {
		for _, st := range batch {
			if _, ok := seen[st.StudyInstanceUID()]; ok {
				continue
			}
			seen[st.StudyInstanceUID()] = struct{}{}
			merged = append(merged, st)
		}
	}
	return merged
}
