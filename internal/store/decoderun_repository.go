package store

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/kb9vcn/convstack/internal/decoder"
)

// DecodeRunRepository provides database operations for decode runs and
// implements decoder.TraceSink so decoder.DecodeTrace can record its
// observability trace directly.
type DecodeRunRepository struct {
	db *gorm.DB
}

// NewDecodeRunRepository creates a new repository instance.
func NewDecodeRunRepository(db *gorm.DB) *DecodeRunRepository {
	return &DecodeRunRepository{db: db}
}

// CreateRun inserts a new DecodeRun row, to be called before decoding
// begins so RecordPush/RecordTerminal have a run to attach to.
func (r *DecodeRunRepository) CreateRun(run *DecodeRun) error {
	if run == nil {
		return fmt.Errorf("run cannot be nil")
	}
	if !run.IsValid() {
		return fmt.Errorf("run is not valid: id=%q generators=%q", run.ID, run.Generators)
	}
	run.CreatedAt = time.Now()
	return r.db.Create(run).Error
}

// RecordPush implements decoder.TraceSink.
func (r *DecodeRunRepository) RecordPush(runID string, n decoder.Node, seq int) error {
	node := DecodeNode{
		RunID: runID,
		Seq:   seq,
		Path:  bitsToString(n.Path),
		Code:  bitsToString(n.Code),
		Mu:    n.Mu,
	}
	return r.db.Create(&node).Error
}

// RecordTerminal implements decoder.TraceSink: it appends a final node
// marked terminal and updates the owning run's summary fields.
func (r *DecodeRunRepository) RecordTerminal(runID string, n decoder.Node) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		node := DecodeNode{
			RunID:      runID,
			Seq:        -1,
			Path:       bitsToString(n.Path),
			Code:       bitsToString(n.Code),
			Mu:         n.Mu,
			IsTerminal: true,
		}
		if err := tx.Create(&node).Error; err != nil {
			return err
		}
		return tx.Model(&DecodeRun{}).
			Where("id = ?", runID).
			Updates(map[string]any{
				"terminal_mu":  n.Mu,
				"decoded_bits": bitsToString(n.Path),
			}).Error
	})
}

// GetRun fetches a run and every node recorded against it: pushed nodes
// ordered by push sequence, followed by the terminal node.
func (r *DecodeRunRepository) GetRun(runID string) (*DecodeRun, []DecodeNode, error) {
	var run DecodeRun
	if err := r.db.Where("id = ?", runID).First(&run).Error; err != nil {
		return nil, nil, err
	}

	var nodes []DecodeNode
	if err := r.db.Where("run_id = ?", runID).Order("is_terminal asc, seq asc").Find(&nodes).Error; err != nil {
		return nil, nil, err
	}

	return &run, nodes, nil
}

// AppendNodes inserts many pushed nodes in batched transactions, so a
// large trace does not run as one unbounded insert.
func (r *DecodeRunRepository) AppendNodes(runID string, nodes []decoder.Node, startSeq int) error {
	if len(nodes) == 0 {
		return nil
	}

	const batchSize = 500

	for i := 0; i < len(nodes); i += batchSize {
		end := i + batchSize
		if end > len(nodes) {
			end = len(nodes)
		}
		batch := nodes[i:end]

		rows := make([]DecodeNode, 0, len(batch))
		for j, n := range batch {
			rows = append(rows, DecodeNode{
				RunID: runID,
				Seq:   startSeq + i + j,
				Path:  bitsToString(n.Path),
				Code:  bitsToString(n.Code),
				Mu:    n.Mu,
			})
		}

		err := r.db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&rows).Error
		})
		if err != nil {
			return err
		}
	}

	return nil
}
