package store

import "context"

const insertUser = `
INSERT INTO users (username, email, password_hash)
VALUES ($1, $2, $3)
RETURNING id
`

type InsertUserParams struct {
	Username     string
	Email        string
	PasswordHash string
}

func (q *Queries) InsertUser(ctx context.Context, arg InsertUserParams) (int64, error) {
	var id int64
	err := q.db.QueryRow(ctx, insertUser, arg.Username, arg.Email, arg.PasswordHash).Scan(&id)
	return id, err
}

const getUserByEmail = `
SELECT id, username, email, password_hash
FROM users
WHERE email = $1
`

type UserRow struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
}

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (UserRow, error) {
	var u UserRow
	err := q.db.QueryRow(ctx, getUserByEmail, email).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash)
	return u, err
}

const getUserByID = `
SELECT id, username, email
FROM users
WHERE id = $1
`

type UserProfileRow struct {
	ID       int64
	Username string
	Email    string
}

func (q *Queries) GetUserByID(ctx context.Context, id int64) (UserProfileRow, error) {
	var u UserProfileRow
	err := q.db.QueryRow(ctx, getUserByID, id).Scan(&u.ID, &u.Username, &u.Email)
	return u, err
}

const userExists = `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`

func (q *Queries) UserExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := q.db.QueryRow(ctx, userExists, id).Scan(&exists)
	return exists, err
}
