package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	catalogdomain "github.com/tungnhan410/Cty-ban-lieu-xay-dung/domain/catalog"
	"github.com/tungnhan410/Cty-ban-lieu-xay-dung/domain/order"
	catalogmod "github.com/tungnhan410/Cty-ban-lieu-xay-dung/modules/catalog"
	ordersmod "github.com/tungnhan410/Cty-ban-lieu-xay-dung/modules/orders"
)

// uploadsService and registryService are the slices of those modules the
// handlers actually use.
type uploadsService interface {
	Save(filename string, data []byte) (string, error)
}

type registryService interface {
	Register(ctx context.Context, username, company, president string) error
}

// cartItem is a resolved cart line for rendering.
type cartItem struct {
	Product  catalogdomain.Product
	Qty      int
	Subtotal float64
}

// orderView is an order with its snapshot lines decoded for rendering.
type orderView struct {
	Order order.Order
	Items []order.Item
}

func (m *Module) index(c *gin.Context) {
	filter := catalogdomain.Filter{
		Query:    c.Query("q"),
		Category: c.Query("category"),
	}
	products, err := m.catalog.List(c.Request.Context(), filter)
	if err != nil {
		m.logError("failed to list products", err)
		c.String(http.StatusInternalServerError, "Có lỗi xảy ra, vui lòng thử lại.")
		return
	}

	s := m.session(c)
	notices, errs := m.popFlashes(c, s)
	ct := cartFromSession(s)
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Products": products,
		"Query":    filter.Query,
		"Category": filter.Category,
		"CartQty":  ct.TotalQty(),
		"Notices":  notices,
		"Errors":   errs,
	})
}

func (m *Module) productDetail(c *gin.Context) {
	p, err := m.catalog.GetBySlug(c.Request.Context(), c.Param("slug"))
	if errors.Is(err, catalogdomain.ErrNotFound) {
		c.String(http.StatusNotFound, "404 page not found")
		return
	}
	if err != nil {
		m.logError("failed to load product", err)
		c.String(http.StatusInternalServerError, "Có lỗi xảy ra, vui lòng thử lại.")
		return
	}

	s := m.session(c)
	ct := cartFromSession(s)
	c.HTML(http.StatusOK, "product.html", gin.H{
		"Product": p,
		"CartQty": ct.TotalQty(),
	})
}

func (m *Module) cartView(c *gin.Context) {
	s := m.session(c)
	ct := cartFromSession(s)

	// Lines whose product is gone are skipped, not surfaced: the cart shows
	// only what still exists. Checkout applies the same drop policy.
	items := make([]cartItem, 0, len(ct.Lines))
	var total float64
	for _, line := range ct.Lines {
		p, err := m.catalog.GetByID(c.Request.Context(), line.ProductID)
		if err != nil {
			m.logError("failed to resolve cart line", err)
			c.String(http.StatusInternalServerError, "Có lỗi xảy ra, vui lòng thử lại.")
			return
		}
		if p == nil {
			continue
		}
		sub := p.Price * float64(line.Qty)
		items = append(items, cartItem{Product: *p, Qty: line.Qty, Subtotal: sub})
		total += sub
	}

	notices, errs := m.popFlashes(c, s)
	c.HTML(http.StatusOK, "cart.html", gin.H{
		"Items":   items,
		"Total":   total,
		"CartQty": ct.TotalQty(),
		"Notices": notices,
		"Errors":  errs,
	})
}

func (m *Module) cartAdd(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusNotFound, "404 page not found")
		return
	}

	// Quantity may arrive in the query string or the form body; anything
	// unparsable or below one falls back to 1.
	qty := 1
	if v, err := strconv.Atoi(c.Request.FormValue("qty")); err == nil && v >= 1 {
		qty = v
	}

	s := m.session(c)
	ct := cartFromSession(s)
	ct.Add(uint(id), qty)
	if err := m.saveCart(c, s, ct); err != nil {
		m.logError("failed to save session", err)
	}
	m.flash(c, s, "Đã thêm vào giỏ hàng.")
	c.Redirect(http.StatusFound, "/")
}

func (m *Module) cartRemove(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusNotFound, "404 page not found")
		return
	}

	s := m.session(c)
	ct := cartFromSession(s)
	ct.Remove(uint(id))
	if err := m.saveCart(c, s, ct); err != nil {
		m.logError("failed to save session", err)
	}
	c.Redirect(http.StatusFound, "/cart")
}

func (m *Module) checkout(c *gin.Context) {
	s := m.session(c)
	ct := cartFromSession(s)
	if ct.IsEmpty() {
		m.flashError(c, s, "Giỏ hàng trống.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	result, err := m.orders.Checkout(c.Request.Context(), ct)
	if errors.Is(err, ordersmod.ErrEmptyCart) {
		m.flashError(c, s, "Giỏ hàng trống.")
		c.Redirect(http.StatusFound, "/")
		return
	}
	if err != nil {
		m.logError("checkout failed", err)
		c.String(http.StatusInternalServerError, "Có lỗi xảy ra, vui lòng thử lại.")
		return
	}

	ct.Clear()
	if err := m.saveCart(c, s, ct); err != nil {
		m.logError("failed to save session", err)
	}
	m.flash(c, s, fmt.Sprintf("Đặt hàng thành công. Mã đơn hàng: #%d", result.OrderID))
	c.Redirect(http.StatusFound, "/")
}

func (m *Module) adminIndex(c *gin.Context) {
	products, err := m.catalog.List(c.Request.Context(), catalogdomain.Filter{})
	if err != nil {
		m.logError("failed to list products", err)
		c.String(http.StatusInternalServerError, "Có lỗi xảy ra, vui lòng thử lại.")
		return
	}

	s := m.session(c)
	notices, errs := m.popFlashes(c, s)
	c.HTML(http.StatusOK, "admin.html", gin.H{
		"Products": products,
		"Notices":  notices,
		"Errors":   errs,
	})
}

func (m *Module) adminAddForm(c *gin.Context) {
	s := m.session(c)
	notices, errs := m.popFlashes(c, s)
	c.HTML(http.StatusOK, "admin_add.html", gin.H{
		"Notices": notices,
		"Errors":  errs,
	})
}

func (m *Module) adminAdd(c *gin.Context) {
	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil {
		c.String(http.StatusBadRequest, "Giá không hợp lệ.")
		return
	}

	stock := 0
	if v := c.PostForm("stock"); v != "" {
		stock, err = strconv.Atoi(v)
		if err != nil {
			c.String(http.StatusBadRequest, "Tồn kho không hợp lệ.")
			return
		}
	}

	s := m.session(c)

	image := ""
	if file, err := c.FormFile("image"); err == nil && file.Filename != "" {
		if m.uploadsSvc == nil {
			c.String(http.StatusInternalServerError, "Có lỗi xảy ra, vui lòng thử lại.")
			return
		}
		f, err := file.Open()
		if err != nil {
			m.logError("failed to open upload", err)
			c.String(http.StatusInternalServerError, "Có lỗi xảy ra, vui lòng thử lại.")
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			m.logError("failed to read upload", err)
			c.String(http.StatusInternalServerError, "Có lỗi xảy ra, vui lòng thử lại.")
			return
		}
		image, err = m.uploadsSvc.Save(file.Filename, data)
		if err != nil {
			m.flashError(c, s, "Ảnh không hợp lệ (chỉ nhận png, jpg, jpeg, gif).")
			c.Redirect(http.StatusFound, "/admin/add")
			return
		}
	}

	_, err = m.catalog.Create(c.Request.Context(), catalogmod.CreateInput{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Category:    c.PostForm("category"),
		Price:       price,
		Stock:       stock,
		Image:       image,
	})
	if errors.Is(err, catalogdomain.ErrDuplicateSlug) {
		m.flashError(c, s, "Tên sản phẩm đã tồn tại (trùng đường dẫn).")
		c.Redirect(http.StatusFound, "/admin/add")
		return
	}
	if err != nil {
		m.logError("failed to create product", err)
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	m.flash(c, s, "Đã thêm sản phẩm.")
	c.Redirect(http.StatusFound, "/admin/add")
}

func (m *Module) adminDelete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusNotFound, "404 page not found")
		return
	}

	err = m.catalog.Delete(c.Request.Context(), uint(id))
	if errors.Is(err, catalogdomain.ErrNotFound) {
		c.String(http.StatusNotFound, "404 page not found")
		return
	}
	if err != nil {
		m.logError("failed to delete product", err)
		c.String(http.StatusInternalServerError, "Có lỗi xảy ra, vui lòng thử lại.")
		return
	}

	s := m.session(c)
	m.flash(c, s, "Đã xóa sản phẩm.")
	c.Redirect(http.StatusFound, "/admin")
}

func (m *Module) adminOrders(c *gin.Context) {
	orders, err := m.orders.List(c.Request.Context())
	if err != nil {
		m.logError("failed to list orders", err)
		c.String(http.StatusInternalServerError, "Có lỗi xảy ra, vui lòng thử lại.")
		return
	}

	views := make([]orderView, 0, len(orders))
	for _, o := range orders {
		items, err := order.DecodeItems(o.Items)
		if err != nil {
			m.logError("failed to decode order items", err)
			items = nil
		}
		views = append(views, orderView{Order: o, Items: items})
	}

	c.HTML(http.StatusOK, "admin_orders.html", gin.H{
		"Orders": views,
	})
}

func (m *Module) register(c *gin.Context) {
	if m.registrySvc == nil {
		c.String(http.StatusInternalServerError, "Có lỗi xảy ra, vui lòng thử lại.")
		return
	}

	username := c.PostForm("username")
	company := c.PostForm("company")
	president := c.PostForm("president")

	if err := m.registrySvc.Register(c.Request.Context(), username, company, president); err != nil {
		m.logError("failed to register", err)
		c.String(http.StatusInternalServerError, "Có lỗi xảy ra, vui lòng thử lại.")
		return
	}

	s := m.session(c)
	s.Values[userNameKey] = username
	s.Values[userCompanyKey] = company
	s.Values[userPresidentKey] = president
	if err := s.Save(c.Request, c.Writer); err != nil {
		m.logError("failed to save session", err)
	}
	c.Redirect(http.StatusFound, "/congno")
}

func (m *Module) congno(c *gin.Context) {
	s := m.session(c)
	str := func(key string) string {
		if v, ok := s.Values[key].(string); ok {
			return v
		}
		return ""
	}
	c.HTML(http.StatusOK, "congno.html", gin.H{
		"Username":  str(userNameKey),
		"Company":   str(userCompanyKey),
		"President": str(userPresidentKey),
	})
}
