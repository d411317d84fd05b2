package store

// Point queries use $N placeholders, which both supported drivers accept.
// Listing queries are built with squirrel in the repositories so the
// ordering and projection stay next to the code that scans them.
const (
	createPost = `INSERT INTO posts (title, body, url, created_at)
    VALUES ($1, $2, $3, $4)
    RETURNING id, title, body, url, created_at;`

	findPostBySlug = `SELECT id, title, body, url, created_at
    FROM posts
    WHERE url = $1
    LIMIT 1;`

	createUser = `INSERT INTO users (name, email, password_hash, avatar, created_at)
    VALUES ($1, $2, $3, NULL, $4)
    RETURNING id, name, email, password_hash, created_at;`

	findUserByID = `SELECT id, name, email, password_hash, avatar, created_at
    FROM users
    WHERE id = $1
    LIMIT 1;`

	findUserByEmail = `SELECT id, name, email, password_hash, avatar, created_at
    FROM users
    WHERE email = $1
    LIMIT 1;`

	updateUserAvatar = `UPDATE users
    SET avatar = $1
    WHERE id = $2;`
)
