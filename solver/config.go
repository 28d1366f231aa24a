package solver

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/probgraph/ijgp/order"
)

// ErrInvalidConfig indicates a Config field, or a key/value in a
// property string, was out of range or unparseable.
var ErrInvalidConfig = errors.New("solver: invalid configuration")

// ErrNotSupported indicates a call this solver never services: bounding
// the partition function, or requesting a joint belief over more than
// one variable.
var ErrNotSupported = errors.New("solver: operation not supported")

// ErrUnknownTask indicates a Task value outside {PR, MAR, MAP}.
var ErrUnknownTask = errors.New("solver: unknown task")

func solverErrorf(fn string, err error) error {
	return fmt.Errorf("solver.%s: %w", fn, err)
}

// Task selects the inference query: PR/MAR (marginal, sum-product) or
// MAP (most probable explanation, max-product).
type Task int

const (
	// PR computes only the log partition function.
	PR Task = iota
	// MAR computes per-variable marginals (and the log partition function).
	MAR
	// MAP computes a most-probable joint assignment (and its log value).
	MAP
)

// String renders the task for logging and property-string round-trips.
func (t Task) String() string {
	switch t {
	case PR:
		return "PR"
	case MAR:
		return "MAR"
	case MAP:
		return "MAP"
	default:
		return "Unknown"
	}
}

// Config holds every knob the IJGP driver needs. The zero value is not
// meaningful; use DefaultConfig or ParseProperties.
type Config struct {
	IBound   int
	NumIter  int
	Task     Task
	Order    order.Method
	Debug    bool
	StopObj  float64
	StopTime float64 // seconds; <= 0 disables the wall-clock stop
}

// DefaultConfig returns the documented defaults:
// iBound=4, Order=MinFill, Iter=10, Task=MAR, Debug=false, no stop
// tolerance or time limit.
func DefaultConfig() Config {
	return Config{
		IBound:  4,
		NumIter: 10,
		Task:    MAR,
		Order:   order.MinFill,
		Debug:   false,
	}
}

// ParseProperties parses the comma-separated "key=value" property string
// this solver is configured with (iBound, Order, Iter, Task, Debug),
// starting from DefaultConfig and overriding only the keys present.
// Unknown keys or unparseable values return ErrInvalidConfig.
func ParseProperties(s string) (Config, error) {
	cfg := DefaultConfig()
	s = strings.TrimSpace(s)
	if s == "" {
		return cfg, nil
	}
	for _, kv := range strings.Split(s, ",") {
		kv = strings.TrimSpace(kv)
		if kv == "" {
			continue
		}
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			return Config{}, solverErrorf("ParseProperties", fmt.Errorf("%w: malformed entry %q", ErrInvalidConfig, kv))
		}
		key, val := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
		switch key {
		case "iBound":
			n, err := strconv.Atoi(val)
			if err != nil || n < 0 {
				return Config{}, solverErrorf("ParseProperties", fmt.Errorf("%w: iBound=%q", ErrInvalidConfig, val))
			}
			cfg.IBound = n
		case "Iter":
			n, err := strconv.Atoi(val)
			if err != nil || n < 1 {
				return Config{}, solverErrorf("ParseProperties", fmt.Errorf("%w: Iter=%q", ErrInvalidConfig, val))
			}
			cfg.NumIter = n
		case "Order":
			method, err := parseOrderMethod(val)
			if err != nil {
				return Config{}, solverErrorf("ParseProperties", err)
			}
			cfg.Order = method
		case "Task":
			task, err := parseTask(val)
			if err != nil {
				return Config{}, solverErrorf("ParseProperties", err)
			}
			cfg.Task = task
		case "Debug":
			cfg.Debug = val != "0" && strings.ToLower(val) != "false"
		default:
			return Config{}, solverErrorf("ParseProperties", fmt.Errorf("%w: unknown key %q", ErrInvalidConfig, key))
		}
	}
	return cfg, nil
}

func parseOrderMethod(s string) (order.Method, error) {
	switch s {
	case "MinFill":
		return order.MinFill, nil
	case "MinDegree":
		return order.MinDegree, nil
	case "Lexicographic":
		return order.Lexicographic, nil
	case "Random":
		return order.Random, nil
	default:
		return 0, fmt.Errorf("%w: Order=%q", ErrInvalidConfig, s)
	}
}

func parseTask(s string) (Task, error) {
	switch s {
	case "PR":
		return PR, nil
	case "MAR":
		return MAR, nil
	case "MAP":
		return MAP, nil
	default:
		return 0, fmt.Errorf("%w: Task=%q", ErrInvalidConfig, s)
	}
}
