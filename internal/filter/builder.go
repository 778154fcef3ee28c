package filter

// Builder assembles a filter expression from discrete metadata criteria.
// A single condition is returned unwrapped; multiple conditions are
// combined with $and. Tags use the list:tags field with $in, matching how
// ZeroEntropy stores list-valued metadata.
type Builder struct {
	conditions []Expr
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Author(author string) *Builder {
	if author != "" {
		b.conditions = append(b.conditions, Expr{"author": map[string]any{"$eq": author}})
	}
	return b
}

func (b *Builder) Language(language string) *Builder {
	if language != "" {
		b.conditions = append(b.conditions, Expr{"language": map[string]any{"$eq": language}})
	}
	return b
}

func (b *Builder) Tags(tags []string) *Builder {
	if len(tags) > 0 {
		values := make([]any, len(tags))
		for i, tag := range tags {
			values[i] = tag
		}
		b.conditions = append(b.conditions, Expr{"list:tags": map[string]any{"$in": values}})
	}
	return b
}

// TimestampAfter adds a strict lower bound on the timestamp field. The
// value is an ISO 8601 string compared lexicographically by the remote
// evaluator.
func (b *Builder) TimestampAfter(timestamp string) *Builder {
	if timestamp != "" {
		b.conditions = append(b.conditions, Expr{"timestamp": map[string]any{"$gt": timestamp}})
	}
	return b
}

func (b *Builder) TimestampBefore(timestamp string) *Builder {
	if timestamp != "" {
		b.conditions = append(b.conditions, Expr{"timestamp": map[string]any{"$lt": timestamp}})
	}
	return b
}

func (b *Builder) Build() Expr {
	switch len(b.conditions) {
	case 0:
		return nil
	case 1:
		return b.conditions[0]
	default:
		clauses := make([]any, len(b.conditions))
		for i, cond := range b.conditions {
			clauses[i] = map[string]any(cond)
		}
		return Expr{"$and": clauses}
	}
}
