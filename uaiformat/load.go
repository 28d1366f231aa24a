package uaiformat

import (
	"fmt"
	"io"

	"github.com/probgraph/ijgp/factor"
	"github.com/probgraph/ijgp/model"
)

// LoadModel parses a UAI-format graphical model: a network-type token
// (MARKOV or BAYES, accepted but not distinguished — both describe an
// undirected collection of non-negative factors once loaded), variable
// cardinalities, factor scopes, and factor tables.
func LoadModel(r io.Reader) (*model.GraphicalModel, error) {
	tk := newTokenizer(r)

	if _, err := tk.next(); err != nil {
		return nil, uaiErrorf("LoadModel", err)
	}

	nvar, err := tk.nextInt()
	if err != nil {
		return nil, uaiErrorf("LoadModel", err)
	}
	if nvar < 0 {
		return nil, uaiErrorf("LoadModel", fmt.Errorf("%w: negative variable count", ErrMalformedInput))
	}
	cardinalities := make([]int, nvar)
	for i := range cardinalities {
		c, err := tk.nextInt()
		if err != nil {
			return nil, uaiErrorf("LoadModel", err)
		}
		if c < 1 {
			return nil, uaiErrorf("LoadModel", fmt.Errorf("%w: variable %d has non-positive cardinality %d", ErrMalformedInput, i, c))
		}
		cardinalities[i] = c
	}

	nfactors, err := tk.nextInt()
	if err != nil {
		return nil, uaiErrorf("LoadModel", err)
	}
	if nfactors < 0 {
		return nil, uaiErrorf("LoadModel", fmt.Errorf("%w: negative factor count", ErrMalformedInput))
	}

	scopes := make([][]int, nfactors)
	for i := 0; i < nfactors; i++ {
		size, err := tk.nextInt()
		if err != nil {
			return nil, uaiErrorf("LoadModel", err)
		}
		scope := make([]int, size)
		for j := range scope {
			v, err := tk.nextInt()
			if err != nil {
				return nil, uaiErrorf("LoadModel", err)
			}
			if v < 0 || v >= nvar {
				return nil, uaiErrorf("LoadModel", fmt.Errorf("%w: factor %d references unknown variable %d", ErrMalformedInput, i, v))
			}
			scope[j] = v
		}
		scopes[i] = scope
	}

	factors := make([]*factor.Factor, nfactors)
	for i := 0; i < nfactors; i++ {
		tableSize, err := tk.nextInt()
		if err != nil {
			return nil, uaiErrorf("LoadModel", err)
		}
		data := make([]float64, tableSize)
		for j := range data {
			v, err := tk.nextFloat()
			if err != nil {
				return nil, uaiErrorf("LoadModel", err)
			}
			data[j] = v
		}

		scope := scopes[i]
		card := make([]int, len(scope))
		for j, v := range scope {
			card[j] = cardinalities[v]
		}
		sortedScope, sortedCard, sortedData := reindexToSortedScope(scope, card, data)
		f, err := factor.NewFactorFromData(sortedScope, sortedCard, sortedData)
		if err != nil {
			return nil, uaiErrorf("LoadModel", fmt.Errorf("%w: factor %d table size disagrees with its scope", ErrMalformedInput, i))
		}
		factors[i] = f
	}

	m, err := model.NewGraphicalModel(cardinalities, factors)
	if err != nil {
		return nil, uaiErrorf("LoadModel", err)
	}
	return m, nil
}

// LoadEvidence parses a ".evid" file: a count followed by that many
// (variable, value) pairs.
func LoadEvidence(r io.Reader) (model.Evidence, error) {
	tk := newTokenizer(r)
	n, err := tk.nextInt()
	if err != nil {
		return nil, uaiErrorf("LoadEvidence", err)
	}
	if n < 0 {
		return nil, uaiErrorf("LoadEvidence", fmt.Errorf("%w: negative evidence count", ErrMalformedInput))
	}
	ev := make(model.Evidence, n)
	for i := 0; i < n; i++ {
		v, err := tk.nextInt()
		if err != nil {
			return nil, uaiErrorf("LoadEvidence", err)
		}
		val, err := tk.nextInt()
		if err != nil {
			return nil, uaiErrorf("LoadEvidence", err)
		}
		ev[v] = val
	}
	return ev, nil
}
