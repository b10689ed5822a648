package classifier

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// maxTreeDepth bounds recursion while compiling trees from an artifact.
const maxTreeDepth = 256

type artifact struct {
	Name         string              `json:"name"`
	Version      string              `json:"version"`
	Objective    string              `json:"objective"`
	Threshold    *float64            `json:"threshold"`
	DateEncoding string              `json:"date_encoding"`
	FeatureNames []string            `json:"feature_names"`
	Categorical  map[string][]string `json:"categorical"`
	InitScore    float64             `json:"init_score"`
	Trees        []artifactTree      `json:"trees"`
}

type artifactTree struct {
	TreeStructure *artifactNode `json:"tree_structure"`
}

type artifactNode struct {
	LeafValue    *float64        `json:"leaf_value"`
	SplitFeature *int            `json:"split_feature"`
	Threshold    json.RawMessage `json:"threshold"`
	DecisionType string          `json:"decision_type"`
	DefaultLeft  bool            `json:"default_left"`
	LeftChild    *artifactNode   `json:"left_child"`
	RightChild   *artifactNode   `json:"right_child"`
}

// node is a compiled tree node.
type node struct {
	leaf        bool
	value       float64
	feature     int
	threshold   float64
	categorical bool
	categories  map[int]struct{}
	defaultLeft bool
	left        *node
	right       *node
}

func (a *artifact) validate() error {
	if a.Objective != "" && a.Objective != "binary" {
		return fmt.Errorf("unsupported objective %q", a.Objective)
	}
	if len(a.FeatureNames) == 0 {
		return errors.New("artifact declares no feature names")
	}
	seen := make(map[string]struct{}, len(a.FeatureNames))
	for _, name := range a.FeatureNames {
		if strings.TrimSpace(name) == "" {
			return errors.New("artifact declares an empty feature name")
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("duplicate feature name %q", name)
		}
		seen[name] = struct{}{}
	}
	for name := range a.Categorical {
		if _, ok := seen[name]; !ok {
			return fmt.Errorf("categorical feature %q is not a declared feature", name)
		}
	}
	if len(a.Trees) == 0 {
		return errors.New("artifact contains no trees")
	}
	if a.Threshold != nil && (*a.Threshold <= 0 || *a.Threshold >= 1) {
		return fmt.Errorf("threshold %v must be within (0, 1)", *a.Threshold)
	}
	return nil
}

func compile(n *artifactNode, features, depth int) (*node, error) {
	if n == nil {
		return nil, errors.New("missing tree node")
	}
	if depth > maxTreeDepth {
		return nil, fmt.Errorf("tree deeper than %d", maxTreeDepth)
	}
	if n.LeafValue != nil {
		return &node{leaf: true, value: *n.LeafValue}, nil
	}
	if n.SplitFeature == nil {
		return nil, errors.New("split node without split_feature")
	}
	if *n.SplitFeature < 0 || *n.SplitFeature >= features {
		return nil, fmt.Errorf("split_feature %d out of range [0, %d)", *n.SplitFeature, features)
	}

	out := &node{feature: *n.SplitFeature, defaultLeft: n.DefaultLeft}
	switch n.DecisionType {
	case "", "<=":
		th, err := numericThreshold(n.Threshold)
		if err != nil {
			return nil, err
		}
		out.threshold = th
	case "==":
		cats, err := categoryThreshold(n.Threshold)
		if err != nil {
			return nil, err
		}
		out.categorical = true
		out.categories = cats
	default:
		return nil, fmt.Errorf("unsupported decision_type %q", n.DecisionType)
	}

	var err error
	if out.left, err = compile(n.LeftChild, features, depth+1); err != nil {
		return nil, err
	}
	if out.right, err = compile(n.RightChild, features, depth+1); err != nil {
		return nil, err
	}
	return out, nil
}

func numericThreshold(raw json.RawMessage) (float64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0, errors.New("split node without threshold")
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, fmt.Errorf("invalid threshold %s", string(raw))
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid threshold %q", s)
	}
	return f, nil
}

// categoryThreshold parses "1||3||5" (or a bare integer) into a category set.
func categoryThreshold(raw json.RawMessage) (map[int]struct{}, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, errors.New("categorical split without threshold")
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		var n int
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, fmt.Errorf("invalid categorical threshold %s", string(raw))
		}
		return map[int]struct{}{n: {}}, nil
	}
	cats := make(map[int]struct{})
	for _, part := range strings.Split(s, "||") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid categorical threshold %q", s)
		}
		cats[n] = struct{}{}
	}
	return cats, nil
}
