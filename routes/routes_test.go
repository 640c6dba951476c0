package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Asian-Restaurant/backend/pkg/docstore"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(store *docstore.Memory) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, store, zap.NewNop())
	return r
}

func do(r *gin.Engine, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	r := newTestRouter(docstore.NewMemory())
	w := do(r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegisterLoginFlow(t *testing.T) {
	r := newTestRouter(docstore.NewMemory())

	w := do(r, http.MethodPost, "/register", `{"name":"Ann","email":"a@b.c","phone":"555","password":"pw"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "User registered successfully", decode(t, w)["message"])

	// duplicate email
	w = do(r, http.MethodPost, "/register", `{"name":"Bob","email":"a@b.c","phone":"999","password":"zz"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User already exists", decode(t, w)["error"])

	// missing fields
	w = do(r, http.MethodPost, "/register", `{"email":"x@b.c"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing required fields", decode(t, w)["error"])

	// login
	w = do(r, http.MethodPost, "/login", `{"email":"a@b.c","password":"pw"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Login successful", decode(t, w)["message"])

	w = do(r, http.MethodPost, "/login", `{"email":"a@b.c","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", decode(t, w)["error"])

	w = do(r, http.MethodPost, "/login", `{"email":"a@b.c"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// login success carries no token
	w = do(r, http.MethodPost, "/login", `{"email":"a@b.c","password":"pw"}`)
	_, hasToken := decode(t, w)["token"]
	assert.False(t, hasToken)
}

func TestLoginStoreFailure(t *testing.T) {
	store := docstore.NewMemory()
	r := newTestRouter(store)
	store.ForcedErr = assert.AnError

	w := do(r, http.MethodPost, "/login", `{"email":"a@b.c","password":"pw"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", decode(t, w)["error"])
}

func TestGetUser(t *testing.T) {
	r := newTestRouter(docstore.NewMemory())
	do(r, http.MethodPost, "/register", `{"name":"Ann","email":"a@b.c","phone":"555","password":"pw"}`)

	w := do(r, http.MethodGet, "/user?email=a@b.c", "")
	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Ann", body["name"])
	assert.Equal(t, "a@b.c", body["email"])
	assert.Equal(t, "555", body["phone"])
	_, leaked := body["password"]
	assert.False(t, leaked)

	w = do(r, http.MethodGet, "/user?email=nobody@b.c", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", decode(t, w)["error"])
}

func TestMenuAndDish(t *testing.T) {
	store := docstore.NewMemory()
	r := newTestRouter(store)

	w := do(r, http.MethodGet, "/menu", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))

	ctx := context.Background()
	require.NoError(t, store.Add(ctx, "menu", docstore.Document{"dish_name": "Soup"}))
	require.NoError(t, store.Add(ctx, "dishes", docstore.Document{
		"dish_name": "Soup", "description": "hot", "image_url": "u", "price": 5.0, "weight": 300.0,
	}))

	w = do(r, http.MethodGet, "/menu", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var items []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 1)

	w = do(r, http.MethodGet, "/dish?dish_name=Soup", "")
	assert.Equal(t, http.StatusOK, w.Code)
	dish := decode(t, w)
	assert.Equal(t, "Soup", dish["dish_name"])
	assert.Equal(t, 5.0, dish["price"])

	w = do(r, http.MethodGet, "/dish?dish_name=soup", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Dish not found", decode(t, w)["error"])
}

func TestCartEndpoints(t *testing.T) {
	r := newTestRouter(docstore.NewMemory())

	w := do(r, http.MethodGet, "/cart", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Cart is empty", decode(t, w)["error"])

	w = do(r, http.MethodPost, "/cart", `{"name_dish":"Soup","price":5,"quantity":2}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Added to cart", decode(t, w)["message"])

	w = do(r, http.MethodPost, "/cart", `{"name_dish":"Soup","price":5,"quantity":3}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = do(r, http.MethodGet, "/cart", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var lines []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lines))
	require.Len(t, lines, 1)
	assert.Equal(t, "Soup", lines[0]["name_dish"])
	assert.Equal(t, 5.0, lines[0]["quantity"])
	assert.Equal(t, 25.0, lines[0]["total_price"])
	assert.Equal(t, "Want to bring home", lines[0]["comment"])
}

func TestCartHeaderSelectsCart(t *testing.T) {
	r := newTestRouter(docstore.NewMemory())

	do(r, http.MethodPost, "/cart", `{"name_dish":"Soup","price":5,"quantity":2}`, "X-Cart-ID", "ann")

	// the legacy shared cart stays empty
	w := do(r, http.MethodGet, "/cart", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodGet, "/cart", "", "X-Cart-ID", "ann")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSaveCart(t *testing.T) {
	store := docstore.NewMemory()
	r := newTestRouter(store)

	w := do(r, http.MethodPost, "/save_cart", `{"items":[{"name_dish":"Soup","price":5,"quantity":2}]}`)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Cart saved successfully", body["message"])

	cart, ok := body["cart"].(map[string]any)
	require.True(t, ok)
	soup, ok := cart["Soup"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 2.0, soup["quantity"])
	assert.Equal(t, 10.0, soup["total_price"])

	assert.Equal(t, 1, store.Len("carts"))

	// no items key
	w = do(r, http.MethodPost, "/save_cart", `{"foo":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid data", decode(t, w)["error"])

	// zero quantity counts as missing
	w = do(r, http.MethodPost, "/save_cart", `{"items":[{"name_dish":"Soup","price":5,"quantity":0}]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing required fields", decode(t, w)["error"])
}

func TestReviews(t *testing.T) {
	r := newTestRouter(docstore.NewMemory())
	do(r, http.MethodPost, "/register", `{"name":"Ann","email":"a@b.c","phone":"555","password":"pw"}`)

	// unregistered email
	w := do(r, http.MethodPost, "/reviews", `{"email":"nobody@b.c","comment":"great"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "User not authorized", decode(t, w)["error"])

	w = do(r, http.MethodPost, "/reviews", `{"email":"a@b.c","comment":"great"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Review added", decode(t, w)["message"])

	w = do(r, http.MethodPost, "/reviews", `{"email":"a@b.c"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodGet, "/reviews", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var reviews []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reviews))
	require.Len(t, reviews, 1)
	assert.Equal(t, "Ann", reviews[0]["name"])
}

func TestDelivery(t *testing.T) {
	store := docstore.NewMemory()
	r := newTestRouter(store)

	w := do(r, http.MethodPost, "/delivery", `{"street":"Main","house":"12","floor":3,"apartment":"4b"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Delivery details saved", decode(t, w)["message"])
	assert.Equal(t, 1, store.Len("delivery"))

	// floor missing, everything else present
	w = do(r, http.MethodPost, "/delivery", `{"street":"Main","house":"12","apartment":"4b"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing delivery details", decode(t, w)["error"])
}
