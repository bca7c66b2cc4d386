package supabase

import (
	"fmt"

	"github.com/google/uuid"

	"creatorops-backend/internal/domain"
	"creatorops-backend/internal/models"
)

const scriptBlockColumns = `id, idea_id, user_id, block_type, content, notes, order_index, created_at`

// CreateScriptBlock appends a block to the idea's script. order_index is
// max+1 at insert time and never resequenced when blocks are deleted.
func (d *DatabaseClient) CreateScriptBlock(block *models.ScriptBlock) (*models.ScriptBlock, error) {
	row := d.db.QueryRow(`
		INSERT INTO script_blocks (id, idea_id, user_id, block_type, content, notes, order_index)
		VALUES ($1, $2, $3, $4, $5, $6,
			(SELECT COALESCE(MAX(order_index) + 1, 0) FROM script_blocks WHERE idea_id = $2))
		RETURNING `+scriptBlockColumns+`
	`, block.ID, block.IdeaID, block.UserID, block.BlockType, block.Content, block.Notes)

	var created models.ScriptBlock
	err := row.Scan(
		&created.ID, &created.IdeaID, &created.UserID, &created.BlockType,
		&created.Content, &created.Notes, &created.OrderIndex, &created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create script block: %w", err)
	}
	return &created, nil
}

func (d *DatabaseClient) ListScriptBlocks(ideaID, userID uuid.UUID) ([]models.ScriptBlock, error) {
	rows, err := d.db.Query(`
		SELECT `+scriptBlockColumns+`
		FROM script_blocks
		WHERE idea_id = $1 AND user_id = $2
		ORDER BY order_index ASC
	`, ideaID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list script blocks: %w", err)
	}
	defer rows.Close()

	var blocks []models.ScriptBlock
	for rows.Next() {
		var block models.ScriptBlock
		err := rows.Scan(
			&block.ID, &block.IdeaID, &block.UserID, &block.BlockType,
			&block.Content, &block.Notes, &block.OrderIndex, &block.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan script block: %w", err)
		}
		blocks = append(blocks, block)
	}

	return blocks, rows.Err()
}

func (d *DatabaseClient) GetScriptBlock(blockID, userID uuid.UUID) (*models.ScriptBlock, error) {
	row := d.db.QueryRow(`
		SELECT `+scriptBlockColumns+`
		FROM script_blocks
		WHERE id = $1 AND user_id = $2
	`, blockID, userID)

	var block models.ScriptBlock
	err := row.Scan(
		&block.ID, &block.IdeaID, &block.UserID, &block.BlockType,
		&block.Content, &block.Notes, &block.OrderIndex, &block.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get script block: %w", err)
	}
	return &block, nil
}

func (d *DatabaseClient) UpdateScriptBlock(block *models.ScriptBlock) (*models.ScriptBlock, error) {
	row := d.db.QueryRow(`
		UPDATE script_blocks
		SET content = $1, notes = $2
		WHERE id = $3 AND user_id = $4
		RETURNING `+scriptBlockColumns+`
	`, block.Content, block.Notes, block.ID, block.UserID)

	var updated models.ScriptBlock
	err := row.Scan(
		&updated.ID, &updated.IdeaID, &updated.UserID, &updated.BlockType,
		&updated.Content, &updated.Notes, &updated.OrderIndex, &updated.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update script block: %w", err)
	}
	return &updated, nil
}

func (d *DatabaseClient) DeleteScriptBlock(blockID, userID uuid.UUID) error {
	_, err := d.db.Exec(`
		DELETE FROM script_blocks
		WHERE id = $1 AND user_id = $2
	`, blockID, userID)
	return err
}

const brollColumns = `id, idea_id, user_id, description, status, source_file, created_at`

func scanBroll(row ideaScanner) (*models.BrollItem, error) {
	var item models.BrollItem
	err := row.Scan(
		&item.ID, &item.IdeaID, &item.UserID, &item.Description,
		&item.Status, &item.SourceFile, &item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (d *DatabaseClient) CreateBrollItem(item *models.BrollItem) (*models.BrollItem, error) {
	row := d.db.QueryRow(`
		INSERT INTO broll_items (id, idea_id, user_id, description, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+brollColumns+`
	`, item.ID, item.IdeaID, item.UserID, item.Description, item.Status)

	created, err := scanBroll(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create b-roll item: %w", err)
	}
	return created, nil
}

func (d *DatabaseClient) ListBrollItems(ideaID, userID uuid.UUID) ([]models.BrollItem, error) {
	rows, err := d.db.Query(`
		SELECT `+brollColumns+`
		FROM broll_items
		WHERE idea_id = $1 AND user_id = $2
		ORDER BY created_at ASC
	`, ideaID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list b-roll items: %w", err)
	}
	defer rows.Close()

	var items []models.BrollItem
	for rows.Next() {
		item, err := scanBroll(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan b-roll item: %w", err)
		}
		items = append(items, *item)
	}

	return items, rows.Err()
}

func (d *DatabaseClient) GetBrollItem(brollID, userID uuid.UUID) (*models.BrollItem, error) {
	row := d.db.QueryRow(`
		SELECT `+brollColumns+`
		FROM broll_items
		WHERE id = $1 AND user_id = $2
	`, brollID, userID)

	item, err := scanBroll(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get b-roll item: %w", err)
	}
	return item, nil
}

func (d *DatabaseClient) UpdateBrollItem(item *models.BrollItem) (*models.BrollItem, error) {
	row := d.db.QueryRow(`
		UPDATE broll_items
		SET description = $1
		WHERE id = $2 AND user_id = $3
		RETURNING `+brollColumns+`
	`, item.Description, item.ID, item.UserID)

	updated, err := scanBroll(row)
	if err != nil {
		return nil, fmt.Errorf("failed to update b-roll item: %w", err)
	}
	return updated, nil
}

func (d *DatabaseClient) SetBrollStatus(brollID, userID uuid.UUID, status domain.BrollStatus) (*models.BrollItem, error) {
	row := d.db.QueryRow(`
		UPDATE broll_items
		SET status = $1
		WHERE id = $2 AND user_id = $3
		RETURNING `+brollColumns+`
	`, status, brollID, userID)

	item, err := scanBroll(row)
	if err != nil {
		return nil, fmt.Errorf("failed to set b-roll status: %w", err)
	}
	return item, nil
}

func (d *DatabaseClient) SetBrollSourceFile(brollID, userID uuid.UUID, sourceFile string) (*models.BrollItem, error) {
	row := d.db.QueryRow(`
		UPDATE broll_items
		SET source_file = $1
		WHERE id = $2 AND user_id = $3
		RETURNING `+brollColumns+`
	`, sourceFile, brollID, userID)

	item, err := scanBroll(row)
	if err != nil {
		return nil, fmt.Errorf("failed to set b-roll source file: %w", err)
	}
	return item, nil
}

func (d *DatabaseClient) DeleteBrollItem(brollID, userID uuid.UUID) error {
	_, err := d.db.Exec(`
		DELETE FROM broll_items
		WHERE id = $1 AND user_id = $2
	`, brollID, userID)
	return err
}
