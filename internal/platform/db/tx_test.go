package db

import (
	"context"
	"errors"
	"testing"
)

func TestWithTx_Commit(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()
	if _, err := conn.ExecContext(ctx, `CREATE TABLE t(v INTEGER)`); err != nil {
		t.Fatal(err)
	}

	err := WithTx(ctx, conn, func(ctx context.Context) error {
		tx := TxFromContext(ctx)
		if tx == nil {
			t.Fatal("no transaction bound to context")
		}
		_, err := tx.ExecContext(ctx, `INSERT INTO t (v) VALUES (1)`)
		return err
	})
	if err != nil {
		t.Fatalf("WithTx: %v", err)
	}

	var n int
	if err := conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM t`).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("row count after commit = %d, want 1", n)
	}
}

func TestWithTx_RollbackOnError(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()
	if _, err := conn.ExecContext(ctx, `CREATE TABLE t(v INTEGER)`); err != nil {
		t.Fatal(err)
	}

	boom := errors.New("boom")
	err := WithTx(ctx, conn, func(ctx context.Context) error {
		tx := TxFromContext(ctx)
		if _, err := tx.ExecContext(ctx, `INSERT INTO t (v) VALUES (1)`); err != nil {
			t.Fatal(err)
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("WithTx error = %v, want boom", err)
	}

	var n int
	if err := conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM t`).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("row count after rollback = %d, want 0", n)
	}
}

func TestWithTx_JoinsExistingTransaction(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()
	if _, err := conn.ExecContext(ctx, `CREATE TABLE t(v INTEGER)`); err != nil {
		t.Fatal(err)
	}

	err := WithTx(ctx, conn, func(outer context.Context) error {
		outerTx := TxFromContext(outer)
		return WithTx(outer, conn, func(inner context.Context) error {
			if TxFromContext(inner) != outerTx {
				t.Error("nested WithTx opened a second transaction")
			}
			_, err := TxFromContext(inner).ExecContext(inner, `INSERT INTO t (v) VALUES (1)`)
			return err
		})
	})
	if err != nil {
		t.Fatalf("WithTx: %v", err)
	}

	var n int
	if err := conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM t`).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("row count = %d, want 1", n)
	}
}

func TestRunner_RunInTx(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()
	if _, err := conn.ExecContext(ctx, `CREATE TABLE t(v INTEGER)`); err != nil {
		t.Fatal(err)
	}

	r := Runner{Conn: conn}
	err := r.RunInTx(ctx, func(ctx context.Context) error {
		_, err := TxFromContext(ctx).ExecContext(ctx, `INSERT INTO t (v) VALUES (7)`)
		return err
	})
	if err != nil {
		t.Fatalf("RunInTx: %v", err)
	}

	var v int
	if err := conn.QueryRowContext(ctx, `SELECT v FROM t`).Scan(&v); err != nil {
		t.Fatal(err)
	}
	if v != 7 {
		t.Errorf("v = %d, want 7", v)
	}
}
