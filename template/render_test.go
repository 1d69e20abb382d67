package template

import (
	"regexp"
	"strings"
	"testing"

	"github.com/Rana718/spring-helper/internal/naming"
	"github.com/Rana718/spring-helper/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userAccountContext() RenderContext {
	return RenderContext{
		Package: "tw.mingchang.app",
		Schema:  "public",
		Table:   "user_account",
		IDs:     naming.Identifiers("user_account"),
		Columns: []types.ResolvedColumn{
			{ColumnDescriptor: types.ColumnDescriptor{Name: "id", NativeType: "int4", Position: 0}, MappedType: "Integer", IsPrimaryKey: true},
			{ColumnDescriptor: types.ColumnDescriptor{Name: "email", NativeType: "varchar", Position: 1}, MappedType: "String"},
			{ColumnDescriptor: types.ColumnDescriptor{Name: "tags", NativeType: "_varchar", Position: 2}, MappedType: "List<String>"},
		},
	}
}

var fieldRe = regexp.MustCompile(`(?m)^    private (\S.*) (\w+);$`)

func TestRenderEntity(t *testing.T) {
	file, err := Render(types.Entity, userAccountContext())
	require.NoError(t, err)

	assert.Equal(t, "model", file.Dir)
	assert.Equal(t, "UserAccount.java", file.Name)
	assert.Contains(t, file.Content, "package tw.mingchang.app.model;\n")
	assert.Contains(t, file.Content, `@Table(schema = "public", value = "user_account")`)
	assert.Contains(t, file.Content, "public class UserAccount {")
	assert.Contains(t, file.Content, "import java.util.List;")

	fields := fieldRe.FindAllStringSubmatch(file.Content, -1)
	require.Len(t, fields, 3)
	assert.Equal(t, []string{"Integer", "id"}, fields[0][1:])
	assert.Equal(t, []string{"String", "email"}, fields[1][1:])
	assert.Equal(t, []string{"List<String>", "tags"}, fields[2][1:])

	assert.Equal(t, 1, strings.Count(file.Content, "@Id\n"))
	assert.Contains(t, file.Content, "    @Id\n    @Column(\"id\")\n    private Integer id;")
	assert.Contains(t, file.Content, "\n\n    @Column(\"email\")\n    private String email;")
}

func TestRenderEntityMapsColumnNames(t *testing.T) {
	rc := userAccountContext()
	rc.Columns = append(rc.Columns, types.ResolvedColumn{
		ColumnDescriptor: types.ColumnDescriptor{Name: "created_at", NativeType: "timestamp", Position: 3},
		MappedType:       "LocalDateTime",
	})

	file, err := Render(types.Entity, rc)
	require.NoError(t, err)

	assert.Contains(t, file.Content, "    @Column(\"created_at\")\n    private LocalDateTime createdAt;")
	assert.Contains(t, file.Content, "import java.time.LocalDateTime;")
	assert.NotContains(t, file.Content, "import java.time.LocalDate;")
}

func TestRenderEntityEscapesKeywordColumns(t *testing.T) {
	rc := userAccountContext()
	rc.Columns = append(rc.Columns,
		types.ResolvedColumn{ColumnDescriptor: types.ColumnDescriptor{Name: "class", NativeType: "varchar", Position: 3}, MappedType: "String"},
		types.ResolvedColumn{ColumnDescriptor: types.ColumnDescriptor{Name: "default", NativeType: "bool", Position: 4}, MappedType: "Boolean"},
	)

	file, err := Render(types.Entity, rc)
	require.NoError(t, err)

	assert.Contains(t, file.Content, "    @Column(\"class\")\n    private String class_;")
	assert.Contains(t, file.Content, "    @Column(\"default\")\n    private Boolean default_;")
	assert.NotContains(t, file.Content, "private String class;")
}

func TestRenderEntityKeepsOperatorTypesVerbatim(t *testing.T) {
	rc := userAccountContext()
	rc.Columns = append(rc.Columns, types.ResolvedColumn{
		ColumnDescriptor: types.ColumnDescriptor{Name: "payload", NativeType: "jsonb", Position: 3},
		MappedType:       "Map<String, Object>",
	})

	file, err := Render(types.Entity, rc)
	require.NoError(t, err)

	assert.Contains(t, file.Content, "    private Map<String, Object> payload;")
}

func TestRenderEntityWithoutColumns(t *testing.T) {
	rc := userAccountContext()
	rc.Columns = nil

	file, err := Render(types.Entity, rc)
	require.NoError(t, err)

	assert.Empty(t, fieldRe.FindAllString(file.Content, -1))
	assert.NotContains(t, file.Content, "@Id")
}

func TestRenderRepository(t *testing.T) {
	file, err := Render(types.Repository, userAccountContext())
	require.NoError(t, err)

	assert.Equal(t, "repository", file.Dir)
	assert.Equal(t, "UserAccountRepository.java", file.Name)
	assert.Contains(t, file.Content, "import tw.mingchang.app.model.UserAccount;")
	assert.Contains(t, file.Content, "public interface UserAccountRepository extends ReactiveCrudRepository<UserAccount, Integer> {")
}

func TestRenderRepositoryCustomIDType(t *testing.T) {
	rc := userAccountContext()
	rc.IDType = "Long"

	file, err := Render(types.Repository, rc)
	require.NoError(t, err)

	assert.Contains(t, file.Content, "ReactiveCrudRepository<UserAccount, Long>")
}

func TestRenderService(t *testing.T) {
	iface, err := Render(types.ServiceInterface, userAccountContext())
	require.NoError(t, err)
	impl, err := Render(types.ServiceImpl, userAccountContext())
	require.NoError(t, err)

	assert.Equal(t, "service", iface.Dir)
	assert.Equal(t, "UserAccountService.java", iface.Name)
	assert.Contains(t, iface.Content, "public interface UserAccountService {\n}")

	assert.Equal(t, "service/impl", impl.Dir)
	assert.Equal(t, "UserAccountServiceImpl.java", impl.Name)
	assert.Contains(t, impl.Content, "package tw.mingchang.app.service.impl;")
	assert.Contains(t, impl.Content, "implements UserAccountService {")
	assert.Contains(t, impl.Content, "private final UserAccountRepository userAccountRepository;")
	assert.Contains(t, impl.Content, "public UserAccountServiceImpl(UserAccountRepository userAccountRepository) {")
}

func TestRenderController(t *testing.T) {
	file, err := Render(types.Controller, userAccountContext())
	require.NoError(t, err)

	assert.Equal(t, "controller", file.Dir)
	assert.Equal(t, "UserAccountController.java", file.Name)
	assert.Contains(t, file.Content, `@RequestMapping("/userAccounts")`)
	assert.Contains(t, file.Content, "private final UserAccountService userAccountService;")
	assert.Contains(t, file.Content, "public UserAccountController(UserAccountService userAccountService) {")
}

func TestRenderAllSharesEntityName(t *testing.T) {
	files, err := RenderAll(userAccountContext())
	require.NoError(t, err)
	require.Len(t, files, 5)

	for _, file := range files {
		assert.True(t, strings.HasPrefix(file.Name, "UserAccount"), file.Name)
		assert.Contains(t, file.Content, "UserAccount", file.Name)
	}

	impl := files[3].Content
	controller := files[4].Content
	assert.Contains(t, impl, "implements "+strings.TrimSuffix(files[2].Name, ".java"))
	assert.Contains(t, controller, "private final "+strings.TrimSuffix(files[2].Name, ".java")+" ")
	assert.Contains(t, files[1].Content, "<"+strings.TrimSuffix(files[0].Name, ".java")+",")
}

func TestRenderIsDeterministic(t *testing.T) {
	first, err := RenderAll(userAccountContext())
	require.NoError(t, err)
	second, err := RenderAll(userAccountContext())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRenderUnknownKind(t *testing.T) {
	_, err := Render(types.ArtifactKind(42), userAccountContext())
	assert.Error(t, err)
}
